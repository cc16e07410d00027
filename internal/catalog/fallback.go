package catalog

import "storefront/internal/shopapi"

// StaticProducts is the bundled catalog shown when the API cannot be
// reached or reports an empty unfiltered catalog.
func StaticProducts() []shopapi.Product {
	return []shopapi.Product{
		{ID: "p2", Name: "Hoop Art – Initial", Price: 29, Category: "Hoop Art", Tag: shopapi.TagEmbroidery,
			Image: "/embroidery-hoop.jpg", Images: []string{"/embroidery-hoop.jpg", "/embroidery-closeup.jpg"}},
		{ID: "p3", Name: "Keychain – Daisy", Price: 12, Category: "Keychains", Tag: shopapi.TagCrochet,
			Image: "/crochet-keychain.jpg", Images: []string{"/crochet-keychain.jpg"}},
		{ID: "p4", Name: "Name Frame – Pastel", Price: 59, Category: "Name Frames", Tag: shopapi.TagEmbroidery,
			Image: "/embroidery-name-frame.jpg", Images: []string{"/embroidery-name-frame.jpg"}},
		{ID: "p5", Name: "Baby Set – Booties", Price: 35, Category: "Baby Sets", Tag: shopapi.TagCrochet,
			Image: "/crochet-baby-set.jpg", Images: []string{"/crochet-baby-set.jpg"}},
		{ID: "p6", Name: "Phone Charm – Hearts", Price: 10, Category: "Phone Charms", Tag: shopapi.TagEmbroidery,
			Image: "/crochet-phone-charm.jpg", Images: []string{"/crochet-phone-charm.jpg"}},
		{ID: "p7", Name: "Coasters – Floral", Price: 16, Category: "Coasters", Tag: shopapi.TagCrochet,
			Image: "/crochet-coasters.jpg", Images: []string{"/crochet-coasters.jpg"}},
		{ID: "p8", Name: "Hair Bow – Embroidered", Price: 14, Category: "Hair Accessories", Tag: shopapi.TagEmbroidery,
			Image: "/embroidered-hair-bow.jpg", Images: []string{"/embroidered-hair-bow.jpg"}},
		{ID: "p9", Name: "Bookmark – Petals", Price: 9, Category: "Bookmarks", Tag: shopapi.TagCrochet,
			Image: "/crochet-bookmark.jpg", Images: []string{"/crochet-bookmark.jpg"}},
		{ID: "p10", Name: "Doll – Mini Friend", Price: 39, Category: "Dolls", Tag: shopapi.TagEmbroidery,
			Image: "/crochet-doll.jpg", Images: []string{"/crochet-doll.jpg"}},
	}
}

func StaticCategories() []shopapi.Category {
	return []shopapi.Category{
		{Name: "Bouquet", Image: "/crochet-bouquet.jpg", Count: 3},
		{Name: "Keychains", Image: "/crochet-keychains.jpg", Count: 2},
		{Name: "Hoop Art", Image: "/embroidery-hoop-art.jpg", Count: 3},
		{Name: "Baby Sets", Image: "/crochet-baby-set.jpg", Count: 1},
		{Name: "Bookmarks", Image: "/crochet-bookmark.jpg", Count: 2},
		{Name: "Dolls", Image: "/crochet-doll.jpg", Count: 5},
		{Name: "Name Frames", Image: "/embroidered-name-frame.jpg", Count: 6},
		{Name: "Phone Charms", Image: "/crochet-phone-charm.jpg", Count: 6},
		{Name: "Hair Accessories", Image: "/embroidered-hair-accessory.jpg", Count: 10},
		{Name: "Coasters", Image: "/crochet-coasters.jpg", Count: 6},
	}
}

// StaticProduct looks a product up in the bundled catalog.
func StaticProduct(id string) (shopapi.Product, bool) {
	for _, p := range StaticProducts() {
		if p.ID == id {
			return p, true
		}
	}
	return shopapi.Product{}, false
}
