package profile

var (
	Summary = `Passionate about data manipulation, visualization, and machine learning.
	Currently seeking a work-study opportunity to apply skills in SQL, Python, and BI tools.`

	ScrapeAI = `Development of a conversational AI using MCP and specialized tools for file analysis.`

	ESGAnalysis = `Optimization of a theoretical ESG portfolio and critical study of responsible
	finance evolution.`

	DiabetesModel = `Implementation of a decision tree algorithm trained on medical datasets
	with cross-validation.`

	MatchAnalytics = `Statistical analysis and interactive visualization of pro player performance.`

	EfreiDegree = `Formation focused on data: Database manipulation (SQL, NoSQL), Data Visualization,
	Big Data, Cloud Computing, Machine Learning, and ETL pipelines.`

	TalTechExchange = `Specialization in Supervised AI, Neural Networks, NLP, and Data Analysis.
	Participated in international collaborative projects.`
)
