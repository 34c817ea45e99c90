package design

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-filtereval/dsp/filter/biquad"
)

const testSR = 48000.0

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func magDB(c biquad.Coefficients, freq float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freq, testSR)))
}

func assertFinite(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	for _, v := range []float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite coefficient in %#v", c)
		}
	}
}

func TestLowpassHighpass_Minus3dBAtCorner(t *testing.T) {
	for _, freq := range []float64{50, 1000, 8000} {
		lp := Lowpass(freq, 0.707, testSR)
		hp := Highpass(freq, 0.707, testSR)
		if got := magDB(lp, freq); !almostEqual(got, -3.0, 0.1) {
			t.Fatalf("Lowpass(%v) at corner = %.4f dB, want -3.0", freq, got)
		}
		if got := magDB(hp, freq); !almostEqual(got, -3.0, 0.1) {
			t.Fatalf("Highpass(%v) at corner = %.4f dB, want -3.0", freq, got)
		}
	}
}

func TestLowpassHighpass_PassbandAndStopband(t *testing.T) {
	lp := Lowpass(1000, 0.707, testSR)
	if got := magDB(lp, 0); !almostEqual(got, 0, 1e-9) {
		t.Fatalf("Lowpass DC gain = %v dB, want 0", got)
	}
	if magDB(lp, 10000) > -35 {
		t.Fatalf("Lowpass not attenuating at 10 kHz: %v dB", magDB(lp, 10000))
	}

	hp := Highpass(1000, 0.707, testSR)
	if got := magDB(hp, testSR/2); !almostEqual(got, 0, 1e-9) {
		t.Fatalf("Highpass Nyquist gain = %v dB, want 0", got)
	}
	if magDB(hp, 100) > -35 {
		t.Fatalf("Highpass not attenuating at 100 Hz: %v dB", magDB(hp, 100))
	}
}

func TestLowpass_GainAtCornerEqualsQ(t *testing.T) {
	for _, q := range []float64{0.5, 1, 2, 5} {
		c := Lowpass(2000, q, testSR)
		want := 20 * math.Log10(q)
		if got := magDB(c, 2000); !almostEqual(got, want, 1e-9) {
			t.Fatalf("q=%v: corner gain %.6f dB, want %.6f", q, got, want)
		}
	}
}

func TestPeak_CenterGain(t *testing.T) {
	for _, g := range []float64{-12, -3, 0, 6, 15} {
		c := Peak(1000, g, 1.5, testSR)
		if got := magDB(c, 1000); !almostEqual(got, g, 1e-9) {
			t.Fatalf("gain=%v: center %.6f dB", g, got)
		}
		if got := magDB(c, 0); !almostEqual(got, 0, 1e-9) {
			t.Fatalf("gain=%v: DC %.6f dB, want 0", g, got)
		}
	}
}

func TestNotchBandpass_Center(t *testing.T) {
	notch := Notch(1000, 2, testSR)
	if got := magDB(notch, 1000); got > -100 {
		t.Fatalf("Notch center = %v dB, want deep null", got)
	}
	if got := magDB(notch, 0); !almostEqual(got, 0, 1e-9) {
		t.Fatalf("Notch DC = %v dB, want 0", got)
	}

	bp := Bandpass(1000, 2, testSR)
	if bp.B1 != 0 || !almostEqual(bp.B0, -bp.B2, 1e-15) {
		t.Fatalf("Bandpass numerator not antisymmetric: %#v", bp)
	}
	if got := magDB(bp, 1000); !almostEqual(got, 0, 1e-9) {
		t.Fatalf("Bandpass center = %v dB, want 0", got)
	}
}

func TestAllpass_UnityMagnitude(t *testing.T) {
	ap := Allpass(1000, 0.8, testSR)
	apFO := AllpassFO(1000, testSR)
	if !apFO.IsFirstOrder() {
		t.Fatalf("AllpassFO is not first order: %#v", apFO)
	}
	for _, f := range []float64{10, 100, 1000, 5000, 20000} {
		if got := magDB(ap, f); !almostEqual(got, 0, 1e-9) {
			t.Fatalf("Allpass |H(%v)| = %v dB", f, got)
		}
		if got := magDB(apFO, f); !almostEqual(got, 0, 1e-9) {
			t.Fatalf("AllpassFO |H(%v)| = %v dB", f, got)
		}
	}
	if ph := cmplx.Phase(apFO.Response(0, testSR)); !almostEqual(ph, 0, 1e-12) {
		t.Fatalf("AllpassFO DC phase = %v", ph)
	}
}

func TestShelves_GainAtExtremes(t *testing.T) {
	const g = 9.0
	tests := []struct {
		name      string
		c         biquad.Coefficients
		dc, nyqst float64
	}{
		{"LowShelf", LowShelf(500, g, 6, testSR), g, 0},
		{"HighShelf", HighShelf(5000, g, 6, testSR), 0, g},
		{"LowShelfFO", LowShelfFO(500, g, testSR), g, 0},
		{"HighShelfFO", HighShelfFO(5000, g, testSR), 0, g},
		{"LowShelfCut", LowShelf(500, -g, 12, testSR), -g, 0},
		{"HighShelfFOCut", HighShelfFO(5000, -g, testSR), 0, -g},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertFinite(t, tc.c)
			if got := magDB(tc.c, 0); !almostEqual(got, tc.dc, 1e-9) {
				t.Fatalf("DC gain = %v dB, want %v", got, tc.dc)
			}
			if got := magDB(tc.c, testSR/2); !almostEqual(got, tc.nyqst, 1e-6) {
				t.Fatalf("Nyquist gain = %v dB, want %v", got, tc.nyqst)
			}
		})
	}
}

func TestShelf_HalfGainAtCorner(t *testing.T) {
	for _, slope := range []float64{3, 6, 12} {
		ls := LowShelf(1000, 12, slope, testSR)
		hs := HighShelf(1000, 12, slope, testSR)
		if got := magDB(ls, 1000); !almostEqual(got, 6, 1e-9) {
			t.Fatalf("LowShelf slope=%v: corner %v dB, want 6", slope, got)
		}
		if got := magDB(hs, 1000); !almostEqual(got, 6, 1e-9) {
			t.Fatalf("HighShelf slope=%v: corner %v dB, want 6", slope, got)
		}
	}
}

func TestShelf_Slope12MatchesButterworthQ(t *testing.T) {
	// With a 12 dB/oct slope the shelf alpha reduces to sin(w0)/sqrt(2).
	w0 := 2 * math.Pi * 800 / testSR
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / math.Sqrt2
	a := math.Pow(10, 4.0/40)
	beta := 2 * math.Sqrt(a) * alpha
	want := biquad.Normalize(
		a*((a+1)-(a-1)*cw+beta),
		2*a*((a-1)-(a+1)*cw),
		a*((a+1)-(a-1)*cw-beta),
		(a+1)+(a-1)*cw+beta,
		-2*((a-1)+(a+1)*cw),
		(a+1)+(a-1)*cw-beta,
	)
	got := LowShelf(800, 4, 12, testSR)
	for i, pair := range [][2]float64{
		{got.B0, want.B0}, {got.B1, want.B1}, {got.B2, want.B2}, {got.A1, want.A1}, {got.A2, want.A2},
	} {
		if !almostEqual(pair[0], pair[1], 1e-12) {
			t.Fatalf("coefficient %d = %v, want %v", i, pair[0], pair[1])
		}
	}
}

func TestFirstOrderPasses(t *testing.T) {
	lp := LowpassFO(1000, testSR)
	hp := HighpassFO(1000, testSR)
	for _, c := range []biquad.Coefficients{lp, hp} {
		if !c.IsFirstOrder() {
			t.Fatalf("expected first-order section, got %#v", c)
		}
		if !c.IsStable() {
			t.Fatalf("expected stable section, got %#v", c)
		}
	}
	if got := magDB(lp, 1000); !almostEqual(got, -3.0103, 1e-3) {
		t.Fatalf("LowpassFO corner = %v dB", got)
	}
	if got := magDB(hp, 1000); !almostEqual(got, -3.0103, 1e-3) {
		t.Fatalf("HighpassFO corner = %v dB", got)
	}
	if got := magDB(lp, 0); !almostEqual(got, 0, 1e-12) {
		t.Fatalf("LowpassFO DC = %v dB", got)
	}
	if got := magDB(hp, testSR/2); !almostEqual(got, 0, 1e-9) {
		t.Fatalf("HighpassFO Nyquist = %v dB", got)
	}
}

func TestLinkwitzTransform(t *testing.T) {
	t.Run("identity when target equals actual", func(t *testing.T) {
		c := LinkwitzTransform(40, 0.9, 40, 0.9, testSR)
		for _, f := range []float64{5, 40, 1000, 20000} {
			if got := magDB(c, f); !almostEqual(got, 0, 1e-9) {
				t.Fatalf("|H(%v)| = %v dB, want 0", f, got)
			}
		}
	})

	t.Run("DC gain is squared frequency ratio", func(t *testing.T) {
		c := LinkwitzTransform(50, 0.707, 25, 0.5, testSR)
		assertFinite(t, c)
		want := 20 * math.Log10(4)
		if got := magDB(c, 0); !almostEqual(got, want, 1e-6) {
			t.Fatalf("DC gain = %v dB, want %v", got, want)
		}
		if got := magDB(c, 15000); !almostEqual(got, 0, 0.01) {
			t.Fatalf("HF gain = %v dB, want 0", got)
		}
		if !c.IsStable() {
			t.Fatal("transform with positive target Q should be stable")
		}
	})
}

func TestFree(t *testing.T) {
	c := Free(0.1, 0.2, 0.3, 0.4, 0.5)
	want := biquad.Coefficients{B0: 0.3, B1: 0.4, B2: 0.5, A1: 0.1, A2: 0.2}
	if c != want {
		t.Fatalf("Free = %#v, want %#v", c, want)
	}
	unstable := Free(0, 1.5, 1, 0, 0)
	if unstable.IsStable() {
		t.Fatal("a2=1.5 must be unstable")
	}
}

func TestDesigners_NoClampingAtBoundary(t *testing.T) {
	// At Nyquist tan(w0/2) diverges; the result is not replaced by a passthrough.
	c := LowpassFO(testSR/2, testSR)
	if c == (biquad.Coefficients{B0: 1}) {
		t.Fatal("boundary design was clamped to passthrough")
	}
	lp := Lowpass(0, 0.707, testSR)
	if lp.B0 != 0 || lp.B1 != 0 || lp.B2 != 0 {
		t.Fatalf("Lowpass at 0 Hz should have a zero numerator, got %#v", lp)
	}
}
