package catalog

import "tripit/models"

// NearbyCountries is the fixed "short-haul" set used by the nearby location
// scope. Relative to an Indian home market, like the rest of the catalog.
var NearbyCountries = map[string]bool{
	"Nepal":                true,
	"Bhutan":               true,
	"Sri Lanka":            true,
	"Maldives":             true,
	"Thailand":             true,
	"Singapore":            true,
	"UAE":                  true,
	"United Arab Emirates": true,
	"Vietnam":              true,
	"Malaysia":             true,
	"Indonesia":            true,
	"Oman":                 true,
	"Cambodia":             true,
	"Laos":                 true,
	"Myanmar":              true,
}

// All is the offline destination catalog, used whenever the recommendation
// service is unavailable. Costs are internal units, not display currency.
var All = []models.Destination{
	// ── India ──
	{ID: 101, Name: "Varanasi", Country: "India", Description: "Spiritual capital of India along the Ganges.", Highlights: "Ganga Aarti, Kashi Vishwanath, Ghats", EstimatedCost: 1000, BestTime: "October-March", TripType: "spiritual", Terrain: "city"},
	{ID: 102, Name: "Rishikesh", Country: "India", Description: "Yoga capital of the world in the Himalayas.", Highlights: "River Rafting, Yoga Ashrams, Laxman Jhula", EstimatedCost: 1200, BestTime: "September-November, March-May", TripType: "spiritual", Terrain: "mountain"},
	{ID: 103, Name: "Amritsar", Country: "India", Description: "Home to the Golden Temple.", Highlights: "Golden Temple, Wagah Border, Jallianwala Bagh", EstimatedCost: 1100, BestTime: "November-March", TripType: "spiritual", Terrain: "city"},
	{ID: 104, Name: "Tirupati", Country: "India", Description: "Major pilgrimage site in Andhra Pradesh.", Highlights: "Venkateswara Temple, Silathoranam", EstimatedCost: 900, BestTime: "September-February", TripType: "spiritual", Terrain: "mountain"},
	{ID: 105, Name: "Leh Ladakh", Country: "India", Description: "High-altitude desert and monasteries.", Highlights: "Pangong Lake, Nubra Valley, Monasteries", EstimatedCost: 2500, BestTime: "June-September", TripType: "adventure", Terrain: "mountain"},
	{ID: 106, Name: "Manali", Country: "India", Description: "Himalayan resort town backpacker center.", Highlights: "Solang Valley, Rohtang Pass, Old Manali", EstimatedCost: 1500, BestTime: "October-June", TripType: "adventure", Terrain: "mountain"},
	{ID: 107, Name: "Sikkim", Country: "India", Description: "Organic state with Kangchenjunga views.", Highlights: "Nathula Pass, Tsomgo Lake, Gangtok", EstimatedCost: 1800, BestTime: "March-May, October-December", TripType: "relaxation", Terrain: "mountain"},
	{ID: 108, Name: "Gulmarg", Country: "India", Description: "Skiing destination in Kashmir.", Highlights: "Gondola Ride, Skiing, Snow", EstimatedCost: 2200, BestTime: "December-March", TripType: "adventure", Terrain: "mountain"},
	{ID: 109, Name: "Goa", Country: "India", Description: "Party capital with sunny beaches.", Highlights: "Baga Beach, Fort Aguada, Dudhsagar Falls", EstimatedCost: 1600, BestTime: "November-February", TripType: "party", Terrain: "beach"},
	{ID: 110, Name: "Andaman", Country: "India", Description: "Pristine islands and coral reefs.", Highlights: "Radhanagar Beach, Scuba Diving, Havelock", EstimatedCost: 2800, BestTime: "October-May", TripType: "romantic", Terrain: "beach"},
	{ID: 111, Name: "Varkala", Country: "India", Description: "Coastal town with red cliffs.", Highlights: "Varkala Beach, Janardanaswamy Temple", EstimatedCost: 1200, BestTime: "October-March", TripType: "relaxation", Terrain: "beach"},
	{ID: 112, Name: "Pondicherry", Country: "India", Description: "French colonial settlement.", Highlights: "Promenade Beach, Auroville, French Quarter", EstimatedCost: 1400, BestTime: "October-March", TripType: "cultural", Terrain: "beach"},
	{ID: 113, Name: "Udaipur", Country: "India", Description: "City of Lakes with lavish palaces.", Highlights: "City Palace, Lake Pichola, Jag Mandir", EstimatedCost: 2000, BestTime: "September-March", TripType: "romantic", Terrain: "city"},
	{ID: 114, Name: "Hampi", Country: "India", Description: "Ancient ruins of Vijayanagara Empire.", Highlights: "Virupaksha Temple, Stone Chariot", EstimatedCost: 1100, BestTime: "October-February", TripType: "cultural", Terrain: "countryside"},
	{ID: 115, Name: "Coorg", Country: "India", Description: "Coffee plantations and misty hills.", Highlights: "Abbey Falls, Coffee Tours, Raja Seat", EstimatedCost: 1500, BestTime: "October-March", TripType: "romantic", Terrain: "countryside"},
	{ID: 116, Name: "Jaisalmer", Country: "India", Description: "Golden City in the Thar Desert.", Highlights: "Jaisalmer Fort, Sam Sand Dunes, Camel Safari", EstimatedCost: 1700, BestTime: "November-March", TripType: "adventure", Terrain: "countryside"},
	{ID: 117, Name: "Lucknow", Country: "India", Description: "City of Nawabs and kebabs.", Highlights: "Bara Imambara, Tunday Kababi, Rumi Darwaza", EstimatedCost: 1300, BestTime: "October-March", TripType: "foodie", Terrain: "city"},
	{ID: 118, Name: "Delhi", Country: "India", Description: "Historic capital with amazing street food.", Highlights: "Chandni Chowk, Red Fort, Humayun Tomb", EstimatedCost: 1500, BestTime: "October-March", TripType: "foodie", Terrain: "city"},

	// ── Nearby (Asia / Middle East) ──
	{ID: 201, Name: "Kathmandu", Country: "Nepal", Description: "Historic temples and Himalayan gateway.", Highlights: "Pashupatinath, Boudhanath, Durbar Square", EstimatedCost: 1200, BestTime: "September-November", TripType: "spiritual", Terrain: "mountain"},
	{ID: 202, Name: "Paro", Country: "Bhutan", Description: "Cliffside monasteries and peace.", Highlights: "Tiger's Nest, Rinpung Dzong", EstimatedCost: 3500, BestTime: "March-May", TripType: "spiritual", Terrain: "mountain"},
	{ID: 203, Name: "Bali", Country: "Indonesia", Description: "Island of Gods.", Highlights: "Uluwatu Temple, Ubud, Rice Terraces", EstimatedCost: 1800, BestTime: "April-October", TripType: "romantic", Terrain: "beach"},
	{ID: 204, Name: "Siem Reap", Country: "Cambodia", Description: "Ancient Angkor temples.", Highlights: "Angkor Wat, Bayon, Ta Prohm", EstimatedCost: 1400, BestTime: "November-March", TripType: "cultural", Terrain: "countryside"},
	{ID: 213, Name: "Bangkok", Country: "Thailand", Description: "Street food capital of the world.", Highlights: "Street Food, Grand Palace, Wat Arun", EstimatedCost: 1500, BestTime: "November-February", TripType: "foodie", Terrain: "city"},
	{ID: 205, Name: "Maldives", Country: "Maldives", Description: "Luxury overwater villas.", Highlights: "Snorkeling, Private Island, Spa", EstimatedCost: 4500, BestTime: "November-April", TripType: "romantic", Terrain: "beach"},
	{ID: 206, Name: "Phuket", Country: "Thailand", Description: "Top beach destination in Asia.", Highlights: "Patong, Phi Phi Islands, Big Buddha", EstimatedCost: 1600, BestTime: "November-February", TripType: "party", Terrain: "beach"},
	{ID: 207, Name: "Langkawi", Country: "Malaysia", Description: "Jewel of Kedah.", Highlights: "Sky Bridge, Mangroves, Beaches", EstimatedCost: 1500, BestTime: "January-March", TripType: "relaxation", Terrain: "beach"},
	{ID: 208, Name: "Da Nang", Country: "Vietnam", Description: "Coastal city with Golden Bridge.", Highlights: "My Khe Beach, Ba Na Hills, Marble Mountains", EstimatedCost: 1300, BestTime: "February-May", TripType: "relaxation", Terrain: "beach"},
	{ID: 209, Name: "Dubai", Country: "UAE", Description: "City of gold and skyscrapers.", Highlights: "Burj Khalifa, Desert Safari, Shopping", EstimatedCost: 2500, BestTime: "November-March", TripType: "luxury", Terrain: "city"},
	{ID: 210, Name: "Singapore", Country: "Singapore", Description: "Garden city of the future.", Highlights: "Marina Bay, Sentosa, Hawker Centers", EstimatedCost: 2200, BestTime: "Year-round", TripType: "foodie", Terrain: "city"},
	{ID: 211, Name: "Tokyo", Country: "Japan", Description: "Neon lights and sushi masters.", Highlights: "Shibuya, Shinjuku, Sushi", EstimatedCost: 3000, BestTime: "March-May", TripType: "foodie", Terrain: "city"},
	{ID: 212, Name: "Colombo", Country: "Sri Lanka", Description: "Coastal capital with colonial roots.", Highlights: "Gangaramaya Temple, Galle Face Green", EstimatedCost: 1200, BestTime: "January-March", TripType: "cultural", Terrain: "city"},

	// ── International (rest of world) ──
	{ID: 301, Name: "Rome", Country: "Italy", Description: "The Eternal City with amazing pasta.", Highlights: "Vatican City, Colosseum, Pasta", EstimatedCost: 2800, BestTime: "April-June", TripType: "foodie", Terrain: "city"},
	{ID: 302, Name: "Jerusalem", Country: "Israel", Description: "Holy city for three faiths.", Highlights: "Western Wall, Holy Sepulchre", EstimatedCost: 2600, BestTime: "April-May", TripType: "spiritual", Terrain: "city"},
	{ID: 303, Name: "Kyoto", Country: "Japan", Description: "Heart of traditional Japan.", Highlights: "Kinkaku-ji, Fushimi Inari, Bamboo Grove", EstimatedCost: 2900, BestTime: "March-May", TripType: "cultural", Terrain: "city"},
	{ID: 304, Name: "Cairo", Country: "Egypt", Description: "Land of Pharaohs.", Highlights: "Pyramids, Sphinx, Nile Cruise", EstimatedCost: 1800, BestTime: "October-April", TripType: "cultural", Terrain: "countryside"},
	{ID: 305, Name: "Swiss Alps", Country: "Switzerland", Description: "Peak of European beauty.", Highlights: "Matterhorn, Jungfrau, Skiing", EstimatedCost: 4000, BestTime: "December-March", TripType: "adventure", Terrain: "mountain"},
	{ID: 306, Name: "Queenstown", Country: "New Zealand", Description: "Adventure capital of the world.", Highlights: "Bungee Jumping, Milford Sound", EstimatedCost: 3500, BestTime: "December-February", TripType: "adventure", Terrain: "mountain"},
	{ID: 307, Name: "Banff", Country: "Canada", Description: "Rocky Mountain majesty.", Highlights: "Lake Louise, Moraine Lake, Hiking", EstimatedCost: 3200, BestTime: "June-August", TripType: "adventure", Terrain: "mountain"},
	{ID: 308, Name: "Patagonia", Country: "Argentina", Description: "End of the world wilderness.", Highlights: "Perito Moreno, Fitz Roy, Trekking", EstimatedCost: 3800, BestTime: "November-March", TripType: "adventure", Terrain: "mountain"},
	{ID: 309, Name: "Bora Bora", Country: "French Polynesia", Description: "Romantic luxury island.", Highlights: "Overwater Bungalows, Lagoon", EstimatedCost: 6000, BestTime: "May-October", TripType: "romantic", Terrain: "beach"},
	{ID: 310, Name: "Maui", Country: "USA", Description: "Hawaiian paradise.", Highlights: "Road to Hana, Haleakala, Beaches", EstimatedCost: 4500, BestTime: "April-May", TripType: "relaxation", Terrain: "beach"},
	{ID: 311, Name: "Santorini", Country: "Greece", Description: "White buildings, blue domes.", Highlights: "Oia Sunset, Caldera, Wine Tasting", EstimatedCost: 3000, BestTime: "May-October", TripType: "romantic", Terrain: "beach"},
	{ID: 312, Name: "Cancun", Country: "Mexico", Description: "Caribbean coast fun.", Highlights: "Beaches, Cenotes, Chichen Itza", EstimatedCost: 2200, BestTime: "December-April", TripType: "party", Terrain: "beach"},
	{ID: 313, Name: "Paris", Country: "France", Description: "City of Love.", Highlights: "Eiffel Tower, Louvre, Montmartre", EstimatedCost: 3200, BestTime: "April-June", TripType: "romantic", Terrain: "city"},
	{ID: 314, Name: "London", Country: "United Kingdom", Description: "History meets modern.", Highlights: "Big Ben, British Museum, Soho", EstimatedCost: 3000, BestTime: "May-September", TripType: "cultural", Terrain: "city"},
	{ID: 315, Name: "New York", Country: "USA", Description: "The Big Apple.", Highlights: "Times Square, Central Park, Broadway", EstimatedCost: 3500, BestTime: "September-November", TripType: "adventure", Terrain: "city"},
	{ID: 316, Name: "Istanbul", Country: "Turkey", Description: "Where East meets West.", Highlights: "Hagia Sophia, Blue Mosque, Grand Bazaar", EstimatedCost: 1800, BestTime: "April-May", TripType: "cultural", Terrain: "city"},
}
