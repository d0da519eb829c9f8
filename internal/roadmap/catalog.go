package roadmap

// LifestylePurchases is the fixed catalog of purchases, grouped by the
// monthly income level that makes each one comfortable.
func LifestylePurchases() []Purchase {
	return []Purchase{
		// 5K level
		{
			Name:          "Nice 1BR Apartment",
			Cost:          1500,
			MonthlyIncome: 5000,
			Description:   "Comfortable living space in good area",
			LifestyleUnlocks: []string{
				"Live independently in a safe, comfortable area",
				"Have space for home office and productivity",
				"Build credit history through consistent rent payments",
				"Create content in a professional-looking space",
				"Host small gatherings and networking events",
			},
		},
		{
			Name:          "Reliable Car (Honda Civic)",
			Cost:          25000,
			MonthlyIncome: 5000,
			Description:   "Dependable transportation",
			LifestyleUnlocks: []string{
				"Reliable transportation for business meetings",
				"Freedom to travel for opportunities",
				"Professional image for client meetings",
				"No more ride-share expenses",
				"Build credit through auto loan payments",
			},
		},
		// 10K level
		{
			Name:          "BMW 3 Series",
			Cost:          45000,
			MonthlyIncome: 10000,
			Description:   "Entry luxury vehicle",
			LifestyleUnlocks: []string{
				"Professional luxury image for high-end clients",
				"Advanced technology and comfort features",
				"Strong resale value and reliability",
				"Access to BMW events and community",
				"Enhanced personal brand and status",
			},
		},
		{
			Name:          "Rolex Submariner",
			Cost:          12000,
			MonthlyIncome: 10000,
			Description:   "Classic luxury timepiece",
			LifestyleUnlocks: []string{
				"Signal success in business meetings",
				"Conversation starter with high-net-worth individuals",
				"Investment piece that holds/appreciates in value",
				"Daily reminder of your achievements",
				"Access to exclusive Rolex events and community",
			},
		},
		{
			Name:          "Luxury 2BR Apartment",
			Cost:          2500,
			MonthlyIncome: 10000,
			Description:   "High-end living with amenities",
			LifestyleUnlocks: []string{
				"Impressive space for client entertainment",
				"Premium amenities (gym, pool, concierge)",
				"Professional address for business credibility",
				"Networking opportunities with successful neighbors",
				"Enhanced quality of life and productivity",
			},
		},
		// 15K level
		{
			Name:          "BMW M4 Competition",
			Cost:          80000,
			MonthlyIncome: 15000,
			Description:   "High-performance sports car",
			LifestyleUnlocks: []string{
				"Ultimate driving experience with 503hp",
				"Exclusive M car community and track events",
				"Strong statement piece for personal brand",
				"Weekend track days and car meets",
				"Impress high-value clients and partners",
			},
		},
		{
			Name:          "Luxury Downtown Condo",
			Cost:          4000,
			MonthlyIncome: 15000,
			Description:   "Premium urban living",
			LifestyleUnlocks: []string{
				"Prime location for business networking",
				"Walking distance to high-end restaurants and venues",
				"Impressive space for entertaining clients",
				"Strong investment potential and equity building",
				"Access to exclusive building amenities and events",
			},
		},
		{
			Name:          "Private Jet Shares (NetJets)",
			Cost:          25000,
			MonthlyIncome: 15000,
			Description:   "Fractional jet ownership",
			LifestyleUnlocks: []string{
				"Skip commercial airline hassles and delays",
				"Productive travel time for business",
				"Access to smaller airports closer to destinations",
				"Impress clients with private aviation",
				"Flexible scheduling for business opportunities",
			},
		},
		// 25K level
		{
			Name:          "Tesla Model S Plaid",
			Cost:          120000,
			MonthlyIncome: 25000,
			Description:   "Ultimate electric performance sedan",
			LifestyleUnlocks: []string{
				"Fastest production sedan (0-60 in 1.99s)",
				"Cutting-edge technology and autopilot",
				"Environmental consciousness with luxury",
				"Access to Tesla Supercharger network",
				"Tech-forward image for personal brand",
			},
		},
		{
			Name:          "Luxury Home",
			Cost:          8000,
			MonthlyIncome: 25000,
			Description:   "Custom home or penthouse",
			LifestyleUnlocks: []string{
				"Host large business events and networking dinners",
				"Multiple home offices and creative spaces",
				"Build significant equity and generational wealth",
				"Impressive backdrop for video content creation",
				"Privacy and space for family and personal life",
			},
		},
		{
			Name:          "Vacation Home",
			Cost:          300000,
			MonthlyIncome: 25000,
			Description:   "Beach house or mountain retreat",
			LifestyleUnlocks: []string{
				"Personal retreat for recharging and creativity",
				"Rental income potential when not in use",
				"Host exclusive business retreats and masterminds",
				"Create premium content from exotic locations",
				"Build real estate investment portfolio",
			},
		},
		// 50K level
		{
			Name:          "Luxury Yacht",
			Cost:          500000,
			MonthlyIncome: 50000,
			Description:   "Private yacht for entertaining",
			LifestyleUnlocks: []string{
				"Ultimate entertainment venue for high-net-worth clients",
				"Exclusive yacht club memberships and events",
				"Charter income potential when not in use",
				"Unique venue for business deals and partnerships",
				"Access to exclusive marinas and destinations",
			},
		},
		{
			Name:          "Private Jet Ownership",
			Cost:          2000000,
			MonthlyIncome: 50000,
			Description:   "Own aircraft for ultimate flexibility",
			LifestyleUnlocks: []string{
				"Complete travel freedom and flexibility",
				"Ultimate time-saving for business efficiency",
				"Impressive asset for high-level business deals",
				"Charter income potential to offset costs",
				"Access to exclusive aviation events and communities",
			},
		},
	}
}
