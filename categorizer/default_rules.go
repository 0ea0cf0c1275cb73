package categorizer

// DefaultRules 内置分类规则，顺序即优先级
func DefaultRules() []Rule {
	return []Rule{
		{Category: "Food & Dining", Keywords: []string{
			"restaurant", "cafe", "food", "dining", "pizza", "burger", "starbucks",
			"mcdonalds", "subway", "grocery", "supermarket", "bakery", "bar",
			"coffee", "lunch", "dinner", "breakfast", "snack", "doordash",
			"uber eats", "grubhub", "delivery", "takeout", "kitchen", "deli",
			"taco bell", "kfc", "dominos", "chipotle", "panera", "whole foods",
			"trader joes", "safeway", "kroger", "target", "walmart", "costco",
		}},
		{Category: "Transportation", Keywords: []string{
			"gas", "fuel", "uber", "lyft", "taxi", "bus", "train", "subway",
			"parking", "toll", "car", "vehicle", "auto", "maintenance",
			"repair", "insurance", "registration", "license", "metro",
			"gasoline", "petrol", "oil change", "tire", "brake", "battery",
			"mechanic", "garage", "tow", "rental", "hertz", "avis", "enterprise",
		}},
		{Category: "Shopping", Keywords: []string{
			"amazon", "walmart", "target", "costco", "mall", "store", "shop",
			"retail", "clothing", "shoes", "electronics", "home", "garden",
			"toys", "books", "music", "movies", "games", "sports", "beauty",
			"best buy", "apple", "nike", "adidas", "macys", "nordstrom",
			"home depot", "lowes", "ikea", "bed bath beyond", "sephora",
		}},
		{Category: "Entertainment", Keywords: []string{
			"movie", "cinema", "theater", "concert", "show", "ticket", "event",
			"game", "sport", "netflix", "spotify", "youtube", "subscription",
			"entertainment", "fun", "party", "club", "bar", "recreation",
			"amusement", "theme park", "zoo", "museum", "bowling", "golf",
			"disney", "hulu", "amazon prime", "apple music", "xbox", "playstation",
		}},
		{Category: "Utilities", Keywords: []string{
			"electric", "electricity", "water", "gas", "internet", "phone",
			"cable", "utility", "bill", "service", "power", "heating",
			"cooling", "trash", "sewage", "wifi", "broadband", "cellular",
			"verizon", "att", "tmobile", "sprint", "comcast", "xfinity",
			"charter", "spectrum", "directv", "dish",
		}},
		{Category: "Healthcare", Keywords: []string{
			"hospital", "doctor", "medical", "health", "pharmacy", "medicine",
			"dental", "vision", "insurance", "clinic", "urgent", "care",
			"prescription", "drug", "therapy", "treatment", "checkup",
			"cvs", "walgreens", "rite aid", "dentist", "orthodontist",
			"ophthalmologist", "dermatologist", "cardiologist", "pediatrician",
		}},
		{Category: "Education", Keywords: []string{
			"school", "university", "college", "tuition", "education", "course",
			"class", "training", "seminar", "workshop", "certification",
			"books", "supplies", "student", "learning", "academic",
			"textbook", "online course", "udemy", "coursera", "khan academy",
			"library", "study", "exam", "test", "degree",
		}},
		{Category: "Travel", Keywords: []string{
			"hotel", "flight", "airline", "airport", "vacation", "trip",
			"travel", "booking", "airbnb", "rental", "cruise", "tour",
			"resort", "accommodation", "luggage", "passport", "visa",
			"expedia", "booking.com", "priceline", "kayak", "southwest",
			"delta", "american airlines", "united", "jetblue", "marriott",
			"hilton", "hyatt", "holiday inn",
		}},
		{Category: "Income", Keywords: []string{
			"salary", "wage", "paycheck", "bonus", "commission", "freelance",
			"consulting", "dividend", "interest", "refund", "cashback",
			"reward", "gift", "prize", "winning", "deposit", "payment",
			"payroll", "employment", "work", "job", "contract", "gig",
			"tip", "gratuity", "royalty", "pension", "social security",
		}},
		{Category: "Banking & Finance", Keywords: []string{
			"bank", "atm", "fee", "charge", "interest", "loan", "credit",
			"debit", "transfer", "withdrawal", "deposit", "overdraft",
			"statement", "account", "finance", "investment", "stock", "bond",
			"mutual fund", "etf", "ira", "401k", "savings", "checking",
			"mortgage", "refinance", "equity", "portfolio", "broker",
			"wells fargo", "chase", "bank of america", "citibank", "fidelity",
			"schwab", "vanguard", "etrade", "robinhood", "td ameritrade",
		}},
		{Category: "Home & Garden", Keywords: []string{
			"rent", "mortgage", "home", "house", "apartment", "property",
			"furniture", "appliance", "hardware", "improvement", "repair",
			"maintenance", "cleaning", "garden", "lawn", "tools", "supplies",
			"home depot", "lowes", "ikea", "home improvement", "plumbing",
			"electrical", "painting", "flooring", "roofing", "hvac",
			"landscaping", "pest control", "security", "renovation",
		}},
		{Category: "Personal Care", Keywords: []string{
			"salon", "spa", "haircut", "beauty", "cosmetics", "skincare",
			"personal", "hygiene", "grooming", "massage", "wellness",
			"fitness", "gym", "health", "self-care", "style", "manicure",
			"pedicure", "facial", "eyebrow", "waxing", "barber",
			"planet fitness", "la fitness", "equinox", "24 hour fitness",
			"sephora", "ulta", "sally beauty",
		}},
		{Category: "Gifts & Donations", Keywords: []string{
			"gift", "present", "donation", "charity", "contribution", "tip",
			"gratuity", "helping", "support", "fundraiser", "cause",
			"nonprofit", "church", "temple", "religious", "giving",
			"birthday", "anniversary", "wedding", "holiday", "christmas",
			"valentine", "mother day", "father day", "graduation",
		}},
		{Category: "Business", Keywords: []string{
			"office", "supply", "equipment", "software", "license", "service",
			"professional", "consultant", "meeting", "conference", "business",
			"work", "expense", "client", "vendor", "contract", "invoice",
			"staples", "office depot", "fedex", "ups", "usps", "shipping",
			"legal", "accounting", "marketing", "advertising", "website",
		}},
		{Category: "Taxes", Keywords: []string{
			"tax", "irs", "refund", "payment", "quarterly", "annual",
			"filing", "preparation", "accountant", "government", "federal",
			"state", "local", "property", "sales", "income", "deduction",
			"w2", "1099", "turbotax", "hr block", "jackson hewitt",
		}},
		{Category: "Insurance", Keywords: []string{
			"insurance", "premium", "policy", "coverage", "claim", "deductible",
			"auto insurance", "car insurance", "health insurance", "life insurance",
			"home insurance", "renters insurance", "disability insurance",
			"allstate", "state farm", "geico", "progressive", "usaa",
			"farmers", "nationwide", "liberty mutual", "aetna", "blue cross",
			"cigna", "humana", "kaiser",
		}},
		{Category: "Subscriptions", Keywords: []string{
			"subscription", "monthly", "annual", "membership", "recurring",
			"netflix", "spotify", "apple music", "amazon prime", "hulu",
			"disney plus", "youtube premium", "microsoft office", "adobe",
			"dropbox", "icloud", "google drive", "gym membership",
			"magazine", "newspaper", "streaming", "software", "saas",
		}},
	}
}
