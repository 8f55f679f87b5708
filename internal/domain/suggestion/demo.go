package suggestion

// DemoResult returns the canned suggestions used when the caller explicitly
// asks for demo mode. It is never substituted for a failed request.
func DemoResult() Result {
	return Result{
		Dishes: []Dish{
			{
				Name:            "Birria Ramen Bowl",
				Description:     "Slow-braised beef birria in a rich consommé broth with fresh ramen noodles, topped with cilantro, onion, and a squeeze of lime.",
				TrendingElement: "birria + ramen fusion",
				PriceRange:      "$18-$22",
				SocialHook:      "When Mexico meets Japan in one bowl 🍜🌮 #BirriaRamen",
			},
			{
				Name:            "Truffle Smash Burger",
				Description:     "Double-smashed wagyu patties with truffle aioli, caramelized onions, and aged gruyère on a toasted brioche bun.",
				TrendingElement: "smash burger + truffle",
				PriceRange:      "$19-$24",
				SocialHook:      "Smashed to perfection, finished with truffle 🍔✨ #SmashBurger",
			},
			{
				Name:            "Miso Caramel Croissant",
				Description:     "Flaky butter croissant filled with salted miso caramel cream and dusted with toasted sesame.",
				TrendingElement: "miso caramel",
				PriceRange:      "$7-$9",
				SocialHook:      "Sweet, salty, and impossibly flaky 🥐 #MisoCaramel",
			},
			{
				Name:            "Dubai Chocolate Dessert Bar",
				Description:     "Crispy kataifi and pistachio cream layered inside a thick milk chocolate shell, served chilled.",
				TrendingElement: "dubai chocolate",
				PriceRange:      "$10-$13",
				SocialHook:      "The viral chocolate bar, now on our menu 🍫 #DubaiChocolate",
			},
		},
		MarketingHeadline: "This Weekend Only: The Dishes Your Feed Can't Stop Talking About",
		KeyInsight:        "Fusion comfort food and viral desserts dominate local feeds because they are built to be photographed and shared.",
	}
}
