package model

type VehicleClass string

const (
	VehicleAuto   VehicleClass = "AUTO"
	VehicleMini   VehicleClass = "MINI"
	VehicleSedan  VehicleClass = "SEDAN"
	VehicleSUV    VehicleClass = "SUV"
	VehicleLuxury VehicleClass = "LUXURY"
)

// VehicleTariff carries the pricing terms of one service tier.
type VehicleTariff struct {
	Class      VehicleClass `json:"class"`
	BasePrice  float64      `json:"base_price"`
	PricePerKm float64      `json:"price_per_km"`
	Capacity   int          `json:"capacity"`
}

// tariffs is the static catalog, ordered cheapest first. Never mutated.
var tariffs = []VehicleTariff{
	{Class: VehicleAuto, BasePrice: 3.0, PricePerKm: 0.9, Capacity: 3},
	{Class: VehicleMini, BasePrice: 5.0, PricePerKm: 1.2, Capacity: 4},
	{Class: VehicleSedan, BasePrice: 7.5, PricePerKm: 1.6, Capacity: 4},
	{Class: VehicleSUV, BasePrice: 10.0, PricePerKm: 2.0, Capacity: 6},
	{Class: VehicleLuxury, BasePrice: 15.0, PricePerKm: 2.8, Capacity: 4},
}

func Tariffs() []VehicleTariff {
	out := make([]VehicleTariff, len(tariffs))
	copy(out, tariffs)
	return out
}

func TariffFor(class VehicleClass) (VehicleTariff, bool) {
	for _, t := range tariffs {
		if t.Class == class {
			return t, true
		}
	}
	return VehicleTariff{}, false
}
