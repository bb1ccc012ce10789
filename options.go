package exprcalc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// prec is the precision, in bits, given to decimal literals and carried
	// into promotions during evaluation.
	prec uint
}

type precopt uint

// Prec sets the precision of decimal arithmetic in bits. The default is
// DefaultPrec.
func Prec(prec uint) ParseOption {
	return precopt(prec)
}

func (o precopt) parseOption(p parsectx) parsectx {
	p.prec = uint(o)
	return p
}
