package mmu

// recompute rebuilds the active 256-entry page table from the current
// softswitch flags and language-card automaton state, per the truth
// table in spec.md §4.1 "Bank composition (IIe)". It runs after every
// C000-C00F, C054-C055, or C080-C08F access.
func (m *Memory) recompute() {
	main := m.mainRAM
	aux := m.auxRAM
	if aux == nil {
		aux = m.mainRAM // platforms without 80-column memory alias to main
	}

	// 00-01 (zero page, stack) follow altzp. The D0-FF language-card
	// region does not: recomputeLanguageCard maps it to the same
	// language-card banks whatever altzp says.
	zpSrc, zpSink := main, main
	if m.flagAltZP {
		zpSrc, zpSink = aux, aux
	}
	m.mapPage(0x00, zpSrc, zpSink, 0x00, "zp")
	m.mapPage(0x01, zpSrc, zpSink, 0x01, "stack")

	// 02-03: by ramrd/ramwrt.
	for p := uint32(0x02); p <= 0x03; p++ {
		rsrc := main
		if m.flagRamRD {
			rsrc = aux
		}
		wsrc := main
		if m.flagRamWR {
			wsrc = aux
		}
		m.mapPage(p, rsrc, wsrc, p, "lomem")
	}

	// 04-07: Text1, gated additionally by 80store+page2.
	for p := uint32(0x04); p <= 0x07; p++ {
		readAux := m.flagRamRD
		writeAux := m.flagRamWR
		if m.flag80Store {
			readAux = m.flagPage2
			writeAux = m.flagPage2
		}
		rsrc, wsrc := main, main
		if readAux {
			rsrc = aux
		}
		if writeAux {
			wsrc = aux
		}
		m.mapPage(p, rsrc, wsrc, p, "text1")
	}

	// 08-1F: by ramrd/ramwrt.
	for p := uint32(0x08); p <= 0x1F; p++ {
		rsrc, wsrc := main, main
		if m.flagRamRD {
			rsrc = aux
		}
		if m.flagRamWR {
			wsrc = aux
		}
		m.mapPage(p, rsrc, wsrc, p, "ram")
	}

	// 20-3F: HGR1, gated additionally by hires+80store+page2.
	for p := uint32(0x20); p <= 0x3F; p++ {
		readAux := m.flagRamRD
		writeAux := m.flagRamWR
		if m.flag80Store && m.flagHiRes {
			readAux = m.flagPage2
			writeAux = m.flagPage2
		}
		rsrc, wsrc := main, main
		if readAux {
			rsrc = aux
		}
		if writeAux {
			wsrc = aux
		}
		m.mapPage(p, rsrc, wsrc, p, "hgr1")
	}

	// 40-BF: by ramrd/ramwrt.
	for p := uint32(0x40); p <= 0xBF; p++ {
		rsrc, wsrc := main, main
		if m.flagRamRD {
			rsrc = aux
		}
		if m.flagRamWR {
			wsrc = aux
		}
		m.mapPage(p, rsrc, wsrc, p, "ram")
	}

	// C1-CF: internal (main ROM at that range) unless a slot ROM is
	// selected; this core has no slot-card ROM other than the internal
	// one, so intcxrom/slotc3rom only choose between ROM and floating
	// bus (no add-in card ROM is modelled beyond Disk II, which this
	// core dispatches through the C0xx handler table rather than the
	// CX page).
	for p := uint32(0xC1); p <= 0xCF; p++ {
		romOff := int(p-0xC1) * 0x100
		if p == 0xC3 && !m.flagSlotC3ROM {
			m.mapROM(p, romOff, "slot3rom")
			continue
		}
		if m.flagIntCXROM || p == 0xC3 {
			m.mapROM(p, romOff, "intcxrom")
		} else {
			m.table[p] = PageEntry{Tag: "slotrom-unmapped"}
		}
	}

	// D0-FF: language-card automaton decides RAM vs ROM source, and
	// which of bank1/bank2 backs D0-DF.
	m.recomputeLanguageCard()
}

func (m *Memory) mapPage(page uint32, readMem, writeMem []byte, pageIdx uint32, tag string) {
	base := int(pageIdx) * 0x100
	_ = m.table.MapRead(int(page), readMem, base, tag)
	_ = m.table.MapWrite(int(page), writeMem, base, tag)
}

func (m *Memory) mapROM(page uint32, romOffset int, tag string) {
	if m.rom == nil || romOffset+0x100 > len(m.rom) {
		m.table[page] = PageEntry{Tag: tag}
		return
	}
	_ = m.table.MapReadROM(int(page), m.rom, romOffset, tag)
	_ = m.table.DiscardWrite(int(page), tag)
}

// recomputeLanguageCard composes D0-FF per spec.md §4.3: bit A3 of the
// last C08x access selects bank1 vs bank2 for D0-DF; E0-FF is shared.
// ReadEnable selects RAM or ROM; WriteEnable gates whether CPU writes
// reach the language-card RAM at all.
func (m *Memory) recomputeLanguageCard() {
	dBank := m.lcBank2
	if m.lc.Bank1 {
		dBank = m.lcBank1
	}

	romBase := len(m.rom) - 0x3000 // D000-FFFF is the top 12KiB of the II/II+ ROM image
	if romBase < 0 {
		romBase = 0
	}

	for p := uint32(0xD0); p <= 0xDF; p++ {
		off := int(p-0xD0) * 0x100
		if m.lc.ReadEnable {
			_ = m.table.MapRead(int(p), dBank, off, "lcram")
		} else {
			_ = m.table.MapReadROM(int(p), m.rom, romBase+off, "lcrom")
		}
		if m.lc.WriteEnable {
			_ = m.table.MapWrite(int(p), dBank, off, "lcram")
		} else {
			_ = m.table.DiscardWrite(int(p), "lcrom")
		}
	}

	for p := uint32(0xE0); p <= 0xFF; p++ {
		off := int(p-0xE0) * 0x100
		if m.lc.ReadEnable {
			_ = m.table.MapRead(int(p), m.lcShared, off, "lcram")
		} else {
			_ = m.table.MapReadROM(int(p), m.rom, romBase+0x1000+off, "lcrom")
		}
		if m.lc.WriteEnable {
			_ = m.table.MapWrite(int(p), m.lcShared, off, "lcram")
		} else {
			_ = m.table.DiscardWrite(int(p), "lcrom")
		}
	}
}
