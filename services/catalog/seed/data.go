package seed

import "github.com/ghuser/charmstore/services/catalog/domain/models"

// sampleProducts is the fixed catalog inserted on first boot. Three of the six
// entries are featured; the set backs the categories and search the storefront
// demos against.
var sampleProducts = []models.ProductParams{
	{
		Name:              "Amethyst Crystal Cluster",
		Description:       "Beautiful purple amethyst cluster known for its calming and spiritual properties. Perfect for meditation and bringing peace to your space.",
		Price:             45.99,
		Category:          models.CategoryCrystals,
		ImageURL:          "https://images.unsplash.com/photo-1521133573892-e44906baee46?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1ODF8MHwxfHNlYXJjaHwxfHxjcnlzdGFsc3xlbnwwfHx8cHVycGxlfDE3NTQyOTExNDd8MA&ixlib=rb-4.1.0&q=85",
		SpiritualBenefits: []string{"Stress relief", "Enhanced intuition", "Peaceful sleep", "Mental clarity"},
		Materials:         []string{"Natural Amethyst"},
		Origin:            "Brazil",
		Featured:          true,
		InStock:           true,
	},
	{
		Name:              "Sacred Geometry Crystal Grid",
		Description:       "Mystical crystal arrangement featuring sacred geometry patterns. Amplifies spiritual energy and creates a powerful meditation space.",
		Price:             89.99,
		Category:          models.CategoryCrystals,
		ImageURL:          "https://images.unsplash.com/photo-1629275622835-f42d081fe666?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1ODF8MHwxfHNlYXJjaHwzfHxjcnlzdGFsc3xlbnwwfHx8cHVycGxlfDE3NTQyOTExNDd8MA&ixlib=rb-4.1.0&q=85",
		SpiritualBenefits: []string{"Energy amplification", "Chakra balancing", "Manifestation power", "Sacred space creation"},
		Materials:         []string{"Clear Quartz", "Rose Quartz", "Amethyst", "Wood base"},
		Origin:            "Handcrafted",
		Featured:          true,
		InStock:           true,
	},
	{
		Name:              "Rose Quartz Heart Stone",
		Description:       "Gentle pink rose quartz carved into a heart shape. Known as the stone of unconditional love and emotional healing.",
		Price:             28.99,
		Category:          models.CategoryHealingStones,
		ImageURL:          "https://images.unsplash.com/photo-1616450121126-7c0b5e157524?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1ODF8MHwxfHNlYXJjaHw0fHxjcnlzdGFsc3xlbnwwfHx8cHVycGxlfDE3NTQyOTExNDd8MA&ixlib=rb-4.1.0&q=85",
		SpiritualBenefits: []string{"Self-love", "Emotional healing", "Heart chakra activation", "Compassion"},
		Materials:         []string{"Natural Rose Quartz"},
		Origin:            "Madagascar",
		Featured:          false,
		InStock:           true,
	},
	{
		Name:              "Spiritual Protection Necklace",
		Description:       "Elegant spiritual jewelry featuring protective stones and sacred symbols. Combines beauty with spiritual protection.",
		Price:             67.99,
		Category:          models.CategorySpiritualJewelry,
		ImageURL:          "https://images.unsplash.com/photo-1599489306395-5a2e35951295?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njd8MHwxfHNlYXJjaHwyfHxzcGlyaXR1YWwlMjBqZXdlbHJ5fGVufDB8fHxwdXJwbGV8MTc1NDI5MTE1Mnww&ixlib=rb-4.1.0&q=85",
		SpiritualBenefits: []string{"Protection from negativity", "Enhanced intuition", "Spiritual connection", "Inner strength"},
		Materials:         []string{"Black Tourmaline", "Sterling Silver", "Leather cord"},
		Origin:            "Artisan crafted",
		Featured:          true,
		InStock:           true,
	},
	{
		Name:              "Ocean Blessing Jewelry Set",
		Description:       "Beautiful jewelry combining seashells, crystals, and gold accents. Brings the calming energy of the ocean into your daily life.",
		Price:             124.99,
		Category:          models.CategorySpiritualJewelry,
		ImageURL:          "https://images.unsplash.com/photo-1596187404741-1ee205c1c353?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njd8MHwxfHNlYXJjaHwzfHxzcGlyaXR1YWwlMjBqZXdlbHJ5fGVufDB8fHxwdXJwbGV8MTc1NDI5MTE1Mnww&ixlib=rb-4.1.0&q=85",
		SpiritualBenefits: []string{"Emotional balance", "Intuitive wisdom", "Peaceful mind", "Connection to nature"},
		Materials:         []string{"Natural Seashells", "Aquamarine", "Gold plating", "Pearls"},
		Origin:            "Coastal crafted",
		Featured:          false,
		InStock:           true,
	},
	{
		Name:              "Golden Harmony Necklace",
		Description:       "Luxurious spiritual necklace with golden elements and protective stones. Perfect for daily spiritual protection and style.",
		Price:             89.99,
		Category:          models.CategorySpiritualJewelry,
		ImageURL:          "https://images.unsplash.com/photo-1627474184398-e5132ed9af24?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NTY2Njd8MHwxfHNlYXJjaHwxfHxzcGlyaXR1YWwlMjBqZXdlbHJ5fGVufDB8fHxwdXJwbGV8MTc1NDI5MTE1Mnww&ixlib=rb-4.1.0&q=85",
		SpiritualBenefits: []string{"Abundance attraction", "Confidence boost", "Spiritual protection", "Positive energy"},
		Materials:         []string{"18k Gold plating", "Tiger's Eye", "Citrine"},
		Origin:            "Handcrafted",
		Featured:          false,
		InStock:           true,
	},
}
