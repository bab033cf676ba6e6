package enums

import "fmt"

// DeliveryOption is how an order reaches the buyer. Only home delivery
// is offered today; pickup exists in the vocabulary for when schools
// start accepting collection.
type DeliveryOption string

const (
	DeliveryOptionDelivery DeliveryOption = "delivery"
	DeliveryOptionPickup   DeliveryOption = "pickup"
)

var validDeliveryOptions = []DeliveryOption{
	DeliveryOptionDelivery,
	DeliveryOptionPickup,
}

func (d DeliveryOption) String() string {
	return string(d)
}

func (d DeliveryOption) IsValid() bool {
	for _, candidate := range validDeliveryOptions {
		if candidate == d {
			return true
		}
	}
	return false
}

func ParseDeliveryOption(value string) (DeliveryOption, error) {
	for _, candidate := range validDeliveryOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid delivery option %q", value)
}
