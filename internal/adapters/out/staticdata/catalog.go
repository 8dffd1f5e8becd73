// Package staticdata provides the store's fixed reference data: kit
// definitions, the frozen-meal menu, the delivery zone table and the
// pickup point. The data changes at release cadence, so it is compiled in
// rather than persisted.
package staticdata

import (
	"pratofit/internal/core/domain/model/catalog"
	"pratofit/internal/core/domain/model/kernel"
)

// NewCatalog builds the store catalog: the four kit sizes and the
// frozen-meal menu.
func NewCatalog() (*catalog.Catalog, error) {
	kits, err := kits()
	if err != nil {
		return nil, err
	}

	items, err := menuItems()
	if err != nil {
		return nil, err
	}

	return catalog.NewCatalog(kits, items)
}

func kits() ([]catalog.Kit, error) {
	specs := []struct {
		id           string
		name         string
		totalMeals   int
		price        float64
		pricePerMeal float64
		description  string
		highlight    bool
	}{
		{"unit", "Unidade Avulsa", 1, 25.00, 25.00, "Ideal para experimentar", false},
		{"kit5", "Kit 5 Refeições", 5, 85.00, 17.00, "Garanta o almoço da semana", true},
		{"kit10", "Kit 10 Refeições", 10, 160.00, 16.00, "Praticidade para 15 dias", false},
		{"kit20", "Kit 20 Refeições", 20, 300.00, 15.00, "O melhor custo-benefício", false},
	}

	kits := make([]catalog.Kit, 0, len(specs))
	for _, s := range specs {
		kit, err := catalog.NewKit(
			s.id,
			s.name,
			s.totalMeals,
			kernel.NewMoneyFromFloat(s.price),
			kernel.NewMoneyFromFloat(s.pricePerMeal),
			s.description,
			s.highlight,
		)
		if err != nil {
			return nil, err
		}
		kits = append(kits, kit)
	}

	return kits, nil
}

const lunchCategory = "Marmitas Saudáveis Congeladas (Almoço)"

func menuItems() ([]catalog.MenuItem, error) {
	specs := []struct {
		id          string
		title       string
		description string
		serving     string
		imageURL    string
		tags        []string
	}{
		{
			"1", "Bobó de Frango",
			"O Bobó de Frango é uma marmita congelada, prática e saudável, que pode ser levada diretamente ao microondas. Em apenas 5 minutos...",
			"Serve 1 pessoa (350g)",
			"https://static.ifood-static.com.br/image/upload/t_medium/pratos/dabc25a4-58f9-43a9-a660-9c8f5125abfd/202402151100_03UX_i.jpg",
			[]string{"Frango", "Sem Glúten"},
		},
		{
			"2", "Escondidinho Frango com Batata Doce",
			"Nosso \"Escondidinho de Batata Doce com Frango\" é uma marmita congelada, prática e saudável, que pode ser facilmente...",
			"Serve 1 pessoa (350g)",
			"https://static.ifood-static.com.br/image/upload/t_medium/pratos/dabc25a4-58f9-43a9-a660-9c8f5125abfd/202402151102_DY8N_i.jpg",
			[]string{"Fit", "Low Carb"},
		},
		{
			"3", "Escondidinho de Carne Moída com Batata Inglesa",
			"Apresentamos nosso Escondidinho de Carne Moída com Batata Inglesa, uma Marmita Saudável Congelada, ideal para quem...",
			"Serve 1 pessoa (350g)",
			"https://static-images.ifood.com.br/pratos/dabc25a4-58f9-43a9-a660-9c8f5125abfd/202406111535_CQYS_i.jpg",
			[]string{"Carne", "Confort Food"},
		},
		{
			"4", "Espaguete a Bolonhesa",
			"Este Espaguete à Bolonhesa, pertencente à nossa linha de Marmitas Saudáveis Congeladas, é uma opção conveniente e...",
			"Serve 1 pessoa (350g)",
			"https://static.ifood-static.com.br/image/upload/t_medium/pratos/dabc25a4-58f9-43a9-a660-9c8f5125abfd/202402151118_Y3R3_i.jpg",
			[]string{"Massa", "Clássico"},
		},
		{
			"5", "Kibe de Forno",
			"Descubra o sabor inigualável do nosso \"Kibe de Forno\", uma opção irresistível da nossa categoria \"Marmitas Saudáveis...",
			"Serve 1 pessoa (350g)",
			"https://static.ifood-static.com.br/image/upload/t_medium/pratos/dabc25a4-58f9-43a9-a660-9c8f5125abfd/202402151104_078B_i.jpg",
			[]string{"Árabe", "Proteico"},
		},
		{
			"6", "Mexido à Mineira",
			"Desfrute do nosso \"Mexido à Mineira\", uma opção incrível em nossa seleção de Marmitas Saudáveis Congeladas. Esta marmi...",
			"Serve 1 pessoa (350g)",
			"https://static.ifood-static.com.br/image/upload/t_medium/pratos/dabc25a4-58f9-43a9-a660-9c8f5125abfd/202402151117_74F1_i.jpg",
			[]string{"Brasileiro", "Completo"},
		},
		{
			"7", "Rubacão Fit",
			"O \"Rubacão Fit\" é uma marmita congelada da nossa categoria \"Marmitas Saudáveis Congeladas\". Com a praticidade de ir direto...",
			"Serve 1 pessoa (350g)",
			"https://static.ifood-static.com.br/image/upload/t_medium/pratos/dabc25a4-58f9-43a9-a660-9c8f5125abfd/202402151114_55U2_i.jpg",
			[]string{"Nordestino", "Cremoso"},
		},
		{
			"8", "Chilli de Feijão Carioca",
			"Nosso \"Chilli\" é uma marmita saudável congelada, preparada com ingredientes de alta qualidade que você pode levar diretament...",
			"Serve 1 pessoa",
			"https://static.ifood-static.com.br/image/upload/t_medium/pratos/dabc25a4-58f9-43a9-a660-9c8f5125abfd/202402151111_S157_i.jpg",
			[]string{"Apimentado", "Feijão"},
		},
		{
			"9", "Feijuca Fit",
			"A \"Feijuca Fit\" é uma deliciosa e saudável marmita congelada, pronta para ser aquecida no microondas em apenas 5 min...",
			"Serve 1 pessoa (350g)",
			"https://static.ifood-static.com.br/image/upload/t_medium/pratos/dabc25a4-58f9-43a9-a660-9c8f5125abfd/202402151107_IPNX_i.jpg",
			[]string{"Brasileiro", "Light"},
		},
		{
			"11", "Galinhada Integral no molho Caseiro de Frango",
			"Saboreie a deliciosa \"Galinhada Integral no Molho Caseiro de Frango\", uma Marmita Congelada pronta para ser levada ao forno micro-ondas para um eficiente descongelamento e aquecimento em apenas 5 a 8 minutos.",
			"Serve 1 pessoa (350g)",
			"https://static-images.ifood.com.br/pratos/dabc25a4-58f9-43a9-a660-9c8f5125abfd/202402151110_KHY5_i.jpg",
			[]string{"Integral", "Frango", "Caseiro"},
		},
	}

	items := make([]catalog.MenuItem, 0, len(specs))
	for _, s := range specs {
		item, err := catalog.NewMenuItem(
			s.id,
			s.title,
			s.description,
			s.serving,
			s.imageURL,
			lunchCategory,
			s.tags,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
