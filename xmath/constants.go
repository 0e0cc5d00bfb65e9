package xmath

// Constants shared by the base-10 (bigdouble) and base-2 (quad) engines for
// converting between representations without losing precision to repeated
// runtime calls to math.Log / math.Pow.
const (
	Ln10    = 2.302585092994046  // math.Log(10)
	InvLn10 = 0.4342944819032518 // 1 / Ln10, i.e. log10(e)
	Ln2     = 0.6931471805599453 // math.Log(2)
	Log2_10 = 3.321928094887362  // math.Log2(10)
	Log10_2 = 0.3010299956639812 // math.Log10(2)
	Sqrt2Pi = 2.5066282746310002 // math.Sqrt(2 * math.Pi)
)
