package enums

import "fmt"

// CardProvider is the sub-choice shown when the card payment method is
// selected.
type CardProvider string

const (
	CardProviderVisa   CardProvider = "visa"
	CardProviderPaypal CardProvider = "paypal"
)

var validCardProviders = []CardProvider{
	CardProviderVisa,
	CardProviderPaypal,
}

func (p CardProvider) String() string {
	return string(p)
}

func (p CardProvider) IsValid() bool {
	for _, candidate := range validCardProviders {
		if candidate == p {
			return true
		}
	}
	return false
}

func ParseCardProvider(value string) (CardProvider, error) {
	for _, candidate := range validCardProviders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid card provider %q", value)
}
