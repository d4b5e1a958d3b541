package profile

// New builds the dataset from compiled-in values. It always succeeds.
func New() *Dataset {
	return &Dataset{
		contact: Contact{
			Name:        "Clément JANUSZ",
			Email:       "Clement.janusz@outlook.com",
			Location:    "Paris, France",
			ProfileLink: "#",
			AvatarURL:   "https://ui-avatars.com/api/?name=Clement+Janusz&background=1E3A8A&color=fff&size=200",
		},
		headline: Headline{
			Title:        "Alternance Data Analyst BI",
			Availability: "Disponible à partir du 1er septembre 2025",
			Summary:      Summary,
		},
		languages: []Language{
			{Name: "Français", Flag: "🇫🇷", Level: ProficiencyNative},
			{Name: "Anglais", Flag: "🇬🇧", Level: ProficiencyB2, Note: "European Section"},
			{Name: "Espagnol", Flag: "🇪🇸", Level: ProficiencyB1},
		},
		interests: []string{"Chess (ELO 1500)", "Lecture", "Course à pied", "Rhétorique"},
		skills: []Skill{
			{Name: "Python", Level: 5},
			{Name: "SQL/NoSQL", Level: 5},
			{Name: "Azure Cloud", Level: 5},
			{Name: "Power BI/Tableau", Level: 3},
			{Name: "Excel", Level: 5},
			{Name: "Databricks", Level: 3},
		},
		projects: []Project{
			{
				Icon:        "🤖",
				Title:       "Scrape.AI (Textual AI)",
				Link:        "http://localhost:3000/",
				Period:      "2023 - 2025",
				Description: ScrapeAI,
				TagsLabel:   "Tech Stack",
				Tags:        []string{"BERT", "Levenshtein", "MCP"},
				Metric:      Metric{Label: "Request Time Reduction", Value: "-70%", Delta: "Optimization"},
			},
			{
				Icon:        "📈",
				Title:       "ESG Financial Analysis",
				Period:      "Sector Analysis",
				Description: ESGAnalysis,
				TagsLabel:   "Focus",
				Tags:        []string{"Risk management", "Volatility control"},
				Metric:      Metric{Label: "Benchmark Outperformance", Value: "+3.2%", Delta: "Annualized (5 yrs)"},
			},
			{
				Icon:        "🏥",
				Title:       "Diabetes Prediction Model",
				Period:      "Medical Data Classification",
				Description: DiabetesModel,
				TagsLabel:   "Tech",
				Tags:        []string{"Decision Trees", "Hyperparameter optimization"},
				Metric:      Metric{Label: "Model Precision", Value: "90%"},
			},
			{
				Icon:        "🎮",
				Title:       "Competitive Match Analytics",
				Period:      "Data Viz & Regression",
				Description: MatchAnalytics,
				TagsLabel:   "Tech",
				Tags:        []string{"Linear Regression", "Data Viz"},
				Metric:      Metric{Label: "Prediction Reliability", Value: "80%"},
			},
		},
		education: []Education{
			{
				Category:    CategoryCurrent,
				Flag:        "🇫🇷",
				Institution: "Bachelor Grade Licence | EFREI Paris",
				Dates:       "09/2023 - Present",
				Description: EfreiDegree,
			},
			{
				Category:    CategoryExchange,
				Flag:        "🇪🇪",
				Institution: "University Exchange | TalTech (Tallinn, Estonia)",
				Dates:       "2025 (2 Months)",
				Description: TalTechExchange,
			},
		},
		supervisor: Supervisor{
			Name:        "Mano Joseph Matthew",
			ProfileLink: "https://www.linkedin.com/in/manojosephmatthew/",
		},
	}
}
