package catalog

// Inference tables per product family. Ordering inside rules is load
// bearing: the first matching rule wins, so specific patterns (two-digit
// Jordan models, branded collabs) sit above the general ones and
// exclusions disambiguate filenames carrying more than one brand token.

func familyFor(cat Category) *family {
	if f, ok := families[cat]; ok {
		return f
	}
	return &genericFamily
}

var genericFamily = family{
	defaultName:  "Shoe",
	defaultPrice: 2500,
	gender:       Men,
	descriptions: []string{
		"Quality footwear, ready to ship countrywide.",
		"Order today via WhatsApp and pay on delivery.",
	},
}

var families = map[Category]*family{
	Officials:  &officialsFamily,
	Sneakers:   &sneakersFamily,
	Jordan:     &jordanFamily,
	AirMax:     &airmaxFamily,
	AirForce:   &airforceFamily,
	Vans:       &vansFamily,
	Casual:     &casualFamily,
	Customized: &customizedFamily,
}

var officialsFamily = family{
	category: Officials,
	rules: []nameRule{
		{match: []string{"empire"}, name: "Empire Leather Official"},
		{match: []string{"wallabee"}, name: "Clarks Wallabees"},
		{match: []string{"clarks"}, name: "Clarks Official"},
		{match: []string{"mule"}, name: "Leather Mules"},
		{match: []string{"chelsea"}, name: "Chelsea Boots"},
		{match: []string{"brogue"}, name: "Brogue Boots"},
		{match: []string{"oxford"}, name: "Oxford Official"},
		{match: []string{"boot"}, name: "Leather Boots"},
		// Plain "casual" in an officials directory means casual leather,
		// unless the file is actually a Clarks model.
		{match: []string{"casual"}, exclude: []string{"clarks"}, name: "Casual Leather Official"},
		{match: []string{"loafer"}, name: "Official Loafers"},
	},
	tiers: []priceTier{
		{keyword: "empire", price: 4500},
		{keyword: "boot", price: 3500},
		{keyword: "wallabee", price: 3200},
		{keyword: "clarks", price: 3200},
		{keyword: "mule", price: 2800},
		{keyword: "casual", price: 2500},
	},
	defaultPrice: 2500,
	defaultName:  "Official Shoe",
	gender:       Men,
	descriptions: []string{
		"Genuine leather officials, built for the boardroom and beyond.",
		"Premium official wear. Countrywide delivery within 24 hours.",
		"Step into the office in style. Order via WhatsApp today.",
		"Handpicked leather quality, sizes 39-45 in stock.",
	},
}

var sneakersFamily = family{
	category: Sneakers,
	rules: []nameRule{
		// Valentino drops ship with Shox-style soles and their filenames
		// often carry both tokens; the exclusion keeps them apart.
		{match: []string{"valentino"}, name: "Valentino Sneaker"},
		{match: []string{"shox"}, exclude: []string{"valentino"}, name: "Nike Shox"},
		{match: []string{"mcqueen"}, name: "Alexander McQueen"},
		{match: []string{"prada"}, name: "Prada Sneaker"},
		{match: []string{"balenciaga"}, name: "Balenciaga Runner"},
		{match: []string{"converse"}, name: "Converse Classic"},
		{match: []string{"samba"}, name: "Adidas Samba"},
		{match: []string{"campus"}, name: "Adidas Campus"},
		{match: []string{"nb530"}, name: "New Balance 530"},
		{match: []string{"newbalance"}, name: "New Balance"},
		{match: []string{"new-balance"}, name: "New Balance"},
		{match: []string{"asics"}, name: "Asics Gel"},
		{match: []string{"dunk"}, name: "Nike Dunk Low"},
	},
	tiers: []priceTier{
		{keyword: "mcqueen", price: 3800},
		{keyword: "valentino", price: 3800},
		{keyword: "prada", price: 3500},
		{keyword: "balenciaga", price: 3500},
		{keyword: "shox", price: 2900},
		{keyword: "converse", price: 1900},
		{keyword: "samba", price: 2500},
		{keyword: "campus", price: 2500},
		{keyword: "new balance", price: 3000},
		{keyword: "asics", price: 3000},
		{keyword: "dunk", price: 3200},
	},
	defaultPrice: 2800,
	defaultName:  "Designer Sneaker",
	gender:       Unisex,
	descriptions: []string{
		"Fresh designer heat, 1:1 quality guaranteed.",
		"Latest drops in stock now. DM to reserve your size.",
		"Streetwear essentials delivered to your doorstep.",
		"Authentic-grade sneakers at Nairobi's best prices.",
		"Cop the pair everyone is asking about.",
	},
}

var jordanFamily = family{
	category: Jordan,
	rules: []nameRule{
		// Two-digit models before one-digit: "jordan11" also contains
		// "jordan1" as a substring.
		{match: []string{"jordan10"}, name: "Jordan 10"},
		{match: []string{"jordan11"}, name: "Jordan 11"},
		{match: []string{"jordan12"}, name: "Jordan 12"},
		{match: []string{"jordan13"}, name: "Jordan 13"},
		{match: []string{"jordan14"}, name: "Jordan 14"},
		{match: []string{"jordan1"}, name: "Jordan 1"},
		{match: []string{"jordan3"}, name: "Jordan 3"},
		{match: []string{"jordan4"}, name: "Jordan 4"},
		{match: []string{"jordan5"}, name: "Jordan 5"},
		{match: []string{"jordan6"}, name: "Jordan 6"},
		{match: []string{"jordan8"}, name: "Jordan 8"},
		{match: []string{"jordan9"}, name: "Jordan 9"},
		{match: []string{"j10"}, name: "Jordan 10"},
		{match: []string{"j11"}, name: "Jordan 11"},
		{match: []string{"j12"}, name: "Jordan 12"},
		{match: []string{"j1"}, name: "Jordan 1"},
		{match: []string{"j4"}, name: "Jordan 4"},
		{match: []string{"retro", "high"}, name: "Jordan Retro High"},
		{match: []string{"retro", "low"}, name: "Jordan Retro Low"},
	},
	tiers: []priceTier{
		{keyword: "jordan 11", price: 4200},
		{keyword: "jordan 12", price: 4200},
		{keyword: "jordan 13", price: 4200},
		{keyword: "jordan 14", price: 4200},
		{keyword: "jordan 4", price: 4000},
		{keyword: "retro", price: 4000},
	},
	defaultPrice: 3800,
	defaultName:  "Air Jordan",
	gender:       Unisex,
	descriptions: []string{
		"Iconic Jordan silhouettes, all colorways available.",
		"Grade-A Jordans with box and extra laces.",
		"The grails you grew up wanting. In stock today.",
		"Jumpman heat, sizes 38-46. WhatsApp to order.",
	},
}

var airmaxFamily = family{
	category: AirMax,
	rules: []nameRule{
		{match: []string{"270"}, name: "Air Max 270"},
		{match: []string{"720"}, name: "Air Max 720"},
		{match: []string{"airmax95"}, name: "Air Max 95"},
		{match: []string{"airmax97"}, name: "Air Max 97"},
		{match: []string{"airmax90"}, name: "Air Max 90"},
		{match: []string{"am95"}, name: "Air Max 95"},
		{match: []string{"am97"}, name: "Air Max 97"},
		{match: []string{"am90"}, name: "Air Max 90"},
		{match: []string{"tn"}, name: "Air Max Plus TN"},
		{match: []string{"plus"}, name: "Air Max Plus TN"},
		{match: []string{"dn"}, name: "Air Max DN"},
		{match: []string{"airmax1"}, name: "Air Max 1"},
	},
	tiers: []priceTier{
		{keyword: "720", price: 3800},
		{keyword: "dn", price: 3800},
		{keyword: "tn", price: 3600},
		{keyword: "95", price: 3600},
		{keyword: "97", price: 3600},
	},
	defaultPrice: 3500,
	defaultName:  "Air Max",
	gender:       Unisex,
	descriptions: []string{
		"Max Air comfort for all-day wear.",
		"Air Max classics restocked. Limited pairs per colorway.",
		"Visible air, invisible fatigue. Order yours now.",
	},
}

var airforceFamily = family{
	category: AirForce,
	rules: []nameRule{
		{match: []string{"shadow"}, name: "Air Force 1 Shadow"},
		{match: []string{"mid"}, name: "Air Force 1 Mid"},
		{match: []string{"high"}, name: "Air Force 1 High"},
		{match: []string{"low"}, name: "Air Force 1 Low"},
		{match: []string{"custom"}, name: "Custom Air Force 1"},
		{match: []string{"af1"}, name: "Air Force 1"},
		{match: []string{"airforce"}, name: "Air Force 1"},
	},
	tiers: []priceTier{
		{keyword: "custom", price: 4500},
		{keyword: "shadow", price: 3500},
		{keyword: "high", price: 3400},
		{keyword: "mid", price: 3300},
	},
	defaultPrice: 3200,
	defaultName:  "Air Force 1",
	gender:       Unisex,
	descriptions: []string{
		"The all-white staple every rotation needs.",
		"Crisp AF1s, triple white and all colorways.",
		"Uptowns done right. Same-day delivery in Nairobi.",
	},
}

var vansFamily = family{
	category: Vans,
	rules: []nameRule{
		{match: []string{"knu"}, name: "Vans Knu Skool"},
		{match: []string{"old", "skool"}, name: "Vans Old Skool"},
		{match: []string{"oldskool"}, name: "Vans Old Skool"},
		{match: []string{"sk8"}, name: "Vans Sk8-Hi"},
		{match: []string{"authentic"}, name: "Vans Authentic"},
		{match: []string{"slip"}, name: "Vans Slip-On"},
		{match: []string{"checker"}, name: "Vans Checkerboard"},
	},
	tiers: []priceTier{
		{keyword: "knu", price: 2600},
		{keyword: "sk8", price: 2500},
		{keyword: "old skool", price: 2300},
	},
	defaultPrice: 2200,
	defaultName:  "Vans Classic",
	gender:       Unisex,
	descriptions: []string{
		"Off the wall since '66. All sizes in stock.",
		"Skate-ready Vans, double-stitched and durable.",
		"Classic checkerboard energy for everyday fits.",
	},
}

var casualFamily = family{
	category: Casual,
	rules: []nameRule{
		{match: []string{"timberland"}, name: "Timberland Boots"},
		{match: []string{"timb"}, name: "Timberland Boots"},
		{match: []string{"loafer"}, name: "Casual Loafers"},
		{match: []string{"boat"}, name: "Boat Shoes"},
		{match: []string{"espadrille"}, name: "Espadrilles"},
		{match: []string{"moccasin"}, name: "Moccasins"},
		{match: []string{"desert"}, name: "Desert Boots"},
	},
	tiers: []priceTier{
		{keyword: "timberland", price: 3800},
		{keyword: "desert", price: 3000},
		{keyword: "loafer", price: 2800},
	},
	defaultPrice: 2600,
	defaultName:  "Casual Shoe",
	gender:       Men,
	descriptions: []string{
		"Weekend-ready comfort that still looks sharp.",
		"Everyday casuals at prices that make sense.",
		"Laid-back styles for work and weekends alike.",
	},
}

var customizedFamily = family{
	category: Customized,
	rules: []nameRule{
		{match: []string{"af1"}, name: "Custom Air Force 1"},
		{match: []string{"airforce"}, name: "Custom Air Force 1"},
		{match: []string{"vans"}, name: "Custom Vans"},
		{match: []string{"converse"}, name: "Custom Converse"},
		{match: []string{"paint"}, name: "Hand-Painted Custom"},
		{match: []string{"anime"}, name: "Anime Custom"},
	},
	tiers: []priceTier{
		{keyword: "anime", price: 5000},
		{keyword: "hand-painted", price: 5000},
	},
	defaultPrice: 4500,
	defaultName:  "Custom Design",
	gender:       Unisex,
	descriptions: []string{
		"One-of-one customs painted by hand to your spec.",
		"Wear art on your feet. Send us your design idea.",
		"Sealed, weather-proofed custom work that lasts.",
	},
}
