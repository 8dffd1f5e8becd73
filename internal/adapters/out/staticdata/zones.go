package staticdata

import (
	"pratofit/internal/core/domain/model/checkout"
	"pratofit/internal/core/domain/model/kernel"
	"pratofit/internal/core/domain/model/zone"
)

// NewZoneTable builds the delivery fee table for Campina Grande - PB.
func NewZoneTable() (zone.Table, error) {
	specs := []struct {
		fee           float64
		label         string
		neighborhoods []string
	}{
		{
			7.00,
			"Bairros Vizinhos (Zona Sul/Leste)",
			[]string{
				"Catolé",
				"Sandra Cavalcante",
				"Mirante",
				"Itararé",
				"Vila Cabral",
				"Jardim Paulistano",
				"Tambor",
				"Liberdade",
			},
		},
		{
			9.00,
			"Bairros Intermediários (Centro/Norte)",
			[]string{
				"Centro",
				"Prata",
				"São José",
				"Alto Branco",
				"Jardim Tavares",
				"Lauritzen",
				"Santo Antônio",
				"Monte Santo",
				"Universitário",
				"Bela Vista",
			},
		},
		{
			12.00,
			"Bairros Afastados (Zona Oeste/Extremos)",
			[]string{
				"Malvinas",
				"Bodocongó",
				"Cruzeiro",
				"Dinamérica",
				"Três Irmãs",
				"Serrotão",
				"Catingueira",
				"Velame",
				"Distrito Industrial",
				"Aluízio Campos",
			},
		},
	}

	zones := make([]zone.Zone, 0, len(specs))
	for _, s := range specs {
		z, err := zone.NewZone(kernel.NewMoneyFromFloat(s.fee), s.label, s.neighborhoods)
		if err != nil {
			return zone.Table{}, err
		}
		zones = append(zones, z)
	}

	return zone.NewTable(zones)
}

// PickupPoint is the store's collection address for pickup orders.
func PickupPoint() checkout.PickupInfo {
	return checkout.PickupInfo{
		Address:  "Rua Maria Minervina, 375 - Catolé",
		City:     "Campina Grande - PB",
		Hours:    "Segunda a Sexta: 09h às 18h | Sábado: 09h às 13h",
		MapsLink: "https://www.google.com/maps/search/?api=1&query=PratoFit+Rua+Maria+Minervina",
	}
}
