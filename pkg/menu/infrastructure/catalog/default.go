package catalog

import "github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"

var defaultItems = []model.CatalogItem{
	{ID: 1, Name: "Bucket Tenders + HotWings", PriceCents: 1800, Image: "/immagini/buchet_tender.png"},
	{ID: 2, Name: "Bucket Vegano", PriceCents: 1300, Image: "/immagini/buchet vegano.png"},
	{ID: 3, Name: "9 Nuggets + Salsa", PriceCents: 600, Image: "/immagini/9 nuggets_salsa.png"},
	{ID: 4, Name: "Box HotDog Spicy", PriceCents: 900, Image: "/immagini/box hot dog spicy.png"},
	{ID: 5, Name: "Box HotDog Cheesy", PriceCents: 900, Image: "/immagini/box meal hot dog cheesy.png"},
	{ID: 7, Name: "Box Cheese and Becon Burger", PriceCents: 1295, Image: "/immagini/box meal cheese e bacon.png"},
	{ID: 8, Name: "Classic Chicken Burger", PriceCents: 490, Image: "/immagini/classic.png"},
	{ID: 9, Name: "Vegan Burger", PriceCents: 490, Image: "/immagini/classico vegetariano.png"},
	{ID: 10, Name: "Cheesy Doritos Fries", PriceCents: 387, Image: "/immagini/doritos fries cheesy.png"},
	{ID: 11, Name: "Spicy Doritos Fries", PriceCents: 387, Image: "/immagini/doritos fries spicy.png"},
	{ID: 12, Name: "Double Chicken BBQ and Becon", PriceCents: 598, Image: "/immagini/double BBQ.png"},
	{ID: 13, Name: "HotDog Spicy", PriceCents: 1300, Image: "/immagini/hot hod dog spicy.png"},
	{ID: 14, Name: "Menù Famiglia Normale", PriceCents: 2500, Image: "/immagini/menu famiglia 2 menu large e 1 junior.png"},
	{ID: 15, Name: "Menù Famiglia Grande", PriceCents: 2845, Image: "/immagini/menu famiglia 2 menu large e 2 junior.png"},
	{ID: 16, Name: "Wrap di Pollo", PriceCents: 812, Image: "/immagini/wrap colonel.png"},
	{ID: 17, Name: "Wrap Vegano", PriceCents: 812, Image: "/immagini/wrap vegano.png"},
	{ID: 18, Name: "Acqua", PriceCents: 120, Image: "/immagini/acqua.png"},
	{ID: 19, Name: "Birra Peroni", PriceCents: 340, Image: "/immagini/birra Peroni.png"},
	{ID: 20, Name: "Actimel", PriceCents: 80, Image: "/immagini/actimel.png"},
	{ID: 21, Name: "Caffè Espresso", PriceCents: 120, Image: "/immagini/caffè espresso.png"},
	{ID: 22, Name: "Mus di frutta", PriceCents: 230, Image: "/immagini/mus di frutta.png"},
	{ID: 23, Name: "Pepsi", PriceCents: 220, Image: "/immagini/pepsi.png"},
	{ID: 24, Name: "Redbull", PriceCents: 200, Image: "/immagini/redbull.png"},
	{ID: 25, Name: "Sundae classico", PriceCents: 480, Image: "/immagini/sundea classico.png"},
	{ID: 26, Name: "Sundae Nutella", PriceCents: 480, Image: "/immagini/sundae nutella.png"},
	{ID: 27, Name: "Sundae Galak Pistacchio", PriceCents: 580, Image: "/immagini/sundae galak pistacchio.png"},
	{ID: 28, Name: "Sundae Caramello ", PriceCents: 480, Image: "/immagini/sndae caramello.png"},
	{ID: 29, Name: "Pane e Nutella", PriceCents: 350, Image: "/immagini/pane e nutella.png"},
}

// Default is the menu served when no catalog file is configured.
func Default() *model.Catalog {
	catalog, err := model.NewCatalog(defaultItems)
	if err != nil {
		panic(err)
	}
	return catalog
}
