package hha

import (
	"bytes"
	"fmt"
	"math"
	"testing"
)

//The three fractions are a partition: they must sum to one at any pH.
func TestFractionsSumToOne(Te *testing.T) {
	for ph := 0.0; ph <= 14.0; ph += 0.5 {
		h2a, ha, a := Fractions(ph, Ka1, Ka2)
		sum := h2a + ha + a
		if math.Abs(sum-1) > 1e-12 {
			Te.Errorf("fractions at pH %v sum to %v", ph, sum)
		}
		if h2a < 0 || ha < 0 || a < 0 {
			Te.Errorf("negative fraction at pH %v: %v %v %v", ph, h2a, ha, a)
		}
	}
}

//At pH = pKa1 the acid and its conjugate base are equally abundant.
func TestHalfEquivalence(Te *testing.T) {
	pka1 := -math.Log10(Ka1)
	h2a, ha, _ := Fractions(pka1, Ka1, Ka2)
	if math.Abs(h2a-ha) > 1e-9 {
		Te.Errorf("at pH=pKa1: H2A %v vs HA %v", h2a, ha)
	}
	pka2 := -math.Log10(Ka2)
	_, ha, a := Fractions(pka2, Ka1, Ka2)
	if math.Abs(ha-a) > 1e-9 {
		Te.Errorf("at pH=pKa2: HA %v vs A %v", ha, a)
	}
}

//Acid dominates at low pH, carbonate at high pH.
func TestSpeciationLimits(Te *testing.T) {
	h2a, _, _ := Fractions(0, Ka1, Ka2)
	if h2a < 0.99 {
		Te.Errorf("H2CO3 fraction at pH 0: %v", h2a)
	}
	_, _, a := Fractions(14, Ka1, Ka2)
	if a < 0.99 {
		Te.Errorf("CO3 fraction at pH 14: %v", a)
	}
}

func TestCarbonicCurve(Te *testing.T) {
	c := Carbonic()
	if len(c.PH) != 143 {
		Te.Errorf("grid has %d points, want 141 plus the two pKa's", len(c.PH))
	}
	//the grid must be sorted, with the pKa's spliced in
	var foundPKa1 bool
	for i, v := range c.PH {
		if i > 0 && v < c.PH[i-1] {
			Te.Errorf("pH grid not sorted at index %d", i)
		}
		if v == PKa1 {
			foundPKa1 = true
		}
	}
	if !foundPKa1 {
		Te.Error("pKa1 not in the grid")
	}
	if len(c.H2A) != len(c.PH) || len(c.HA) != len(c.PH) || len(c.A) != len(c.PH) {
		Te.Error("fraction slices not aligned with the grid")
	}
}

func TestWriteTable(Te *testing.T) {
	var b bytes.Buffer
	WriteTable(&b, Ka1, Ka2, TablePHs())
	fmt.Println(b.String())
	if !bytes.Contains(b.Bytes(), []byte("H2CO3")) {
		Te.Error("table header missing")
	}
	//header + 16 pH rows + 2 blank lines
	var lines int
	for _, c := range b.Bytes() {
		if c == '\n' {
			lines++
		}
	}
	if lines != 19 {
		Te.Errorf("table has %d lines, want 19", lines)
	}
}
