package folio

import "fmt"

// AssetClass broadly categorizes what a node is invested in.
type AssetClass int

const (
	ClassUnknown AssetClass = iota
	ClassCash
	ClassGuaranteed
	ClassBond
	ClassStock
	ClassRealEstate
	ClassMetal
	ClassCrypto
	ClassDiversified
)

func (c AssetClass) String() string {
	switch c {
	case ClassUnknown:
		return "unknown"
	case ClassCash:
		return "cash"
	case ClassGuaranteed:
		return "guaranteed"
	case ClassBond:
		return "bond"
	case ClassStock:
		return "stock"
	case ClassRealEstate:
		return "real-estate"
	case ClassMetal:
		return "metal"
	case ClassCrypto:
		return "crypto"
	case ClassDiversified:
		return "diversified"
	default:
		return "unknown"
	}
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	for c := ClassUnknown; c <= ClassDiversified; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return ClassUnknown, fmt.Errorf("unknown asset class: %q", s)
}

// AssetSubclass refines an AssetClass (e.g. an ETF within stocks).
type AssetSubclass int

const (
	SubclassUnknown AssetSubclass = iota
	SubclassCCP
	SubclassLivret
	SubclassFondEuro
	SubclassETF
	SubclassShare
	SubclassOPC
	SubclassPhysical
	SubclassToken
)

func (c AssetSubclass) String() string {
	switch c {
	case SubclassUnknown:
		return "unknown"
	case SubclassCCP:
		return "ccp"
	case SubclassLivret:
		return "livret"
	case SubclassFondEuro:
		return "fond-euro"
	case SubclassETF:
		return "etf"
	case SubclassShare:
		return "share"
	case SubclassOPC:
		return "opc"
	case SubclassPhysical:
		return "physical"
	case SubclassToken:
		return "token"
	default:
		return "unknown"
	}
}

// ParseAssetSubclass parses a string into an AssetSubclass.
func ParseAssetSubclass(s string) (AssetSubclass, error) {
	for c := SubclassUnknown; c <= SubclassToken; c++ {
		if c.String() == s {
			return c, nil
		}
	}
	return SubclassUnknown, fmt.Errorf("unknown asset subclass: %q", s)
}
