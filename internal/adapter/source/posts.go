package source

import "foodtrend/internal/domain/post"

var mockPosts = []post.Post{
	{Platform: post.PlatformInstagram, Text: "Obsessed with this truffle butter pasta at La Nonna! #food #truffle #pasta #foodie", Likes: 1240, Location: "Downtown"},
	{Platform: post.PlatformInstagram, Text: "Birria tacos are EVERYTHING right now 🔥 #birria #tacos #mexicanfood", Likes: 3400, Location: "Eastside"},
	{Platform: post.PlatformInstagram, Text: "Korean corn dogs > everything. Change my mind. #koreancorndog #streetfood", Likes: 2100, Location: "Koreatown"},
	{Platform: post.PlatformInstagram, Text: "Smash burgers with wagyu beef — this weekend's obsession #wagyu #smashburger", Likes: 1870, Location: "Westside"},
	{Platform: post.PlatformInstagram, Text: "Can't stop thinking about that miso caramel croissant #croissant #fusion #bakery", Likes: 4500, Location: "Northside"},
	{Platform: post.PlatformTwitter, Text: "birria tacos > all tacos. fight me", Likes: 890, Location: "City Center"},
	{Platform: post.PlatformTwitter, Text: "every restaurant needs a smash burger option. it's the law.", Likes: 560, Location: "Westside"},
	{Platform: post.PlatformTwitter, Text: "miso + caramel is the combo i didn't know i needed", Likes: 1200, Location: "Northside"},
	{Platform: post.PlatformTikTok, Text: "Making viral Dubai chocolate at home #dubai #chocolate #viral #foodtok", Likes: 45000, Location: "Suburbs"},
	{Platform: post.PlatformTikTok, Text: "Birria ramen fusion — the collab nobody asked for but everyone needed #fusion #ramen", Likes: 22000, Location: "Eastside"},
	{Platform: post.PlatformTikTok, Text: "smash burger tutorial blew up 🍔 #smashburger #burger #foodtok", Likes: 31000, Location: "Westside"},
	{Platform: post.PlatformTikTok, Text: "truffle everything is back. truffle fries, truffle pasta, truffle butter #truffle", Likes: 18000, Location: "Downtown"},
	{Platform: post.PlatformYelp, Text: "The wagyu smash burger was incredible. Worth every penny.", Likes: 45, Location: "Westside"},
	{Platform: post.PlatformYelp, Text: "Birria tacos — crispy, cheesy, and the consommé was perfect for dipping.", Likes: 67, Location: "Eastside"},
	{Platform: post.PlatformYelp, Text: "Dubai chocolate dessert — unique and absolutely delicious.", Likes: 89, Location: "Suburbs"},
}
