package taxonomy

// Default returns the built-in tables. The category set deliberately spans
// technical, business, communication, soft-skill, industry, and personal
// attribute groups so the engine works for any job posting, not just tech.
func Default() *Taxonomy {
	t := &Taxonomy{
		Categories: []Category{
			{Name: "programming", Phrases: []string{"programming", "coding", "software development", "web development", "mobile development", "database", "sql", "javascript", "python", "java", "react", "node.js", "html", "css"}},
			{Name: "systems", Phrases: []string{"pos system", "pos operation", "computer systems", "software", "hardware", "network", "database management", "system administration"}},
			{Name: "data", Phrases: []string{"data analysis", "analytics", "reporting", "excel", "spreadsheet", "statistics", "research"}},
			{Name: "customer service", Phrases: []string{"customer service", "customer support", "customer interaction", "client relations", "customer satisfaction"}},
			{Name: "sales", Phrases: []string{"sales", "selling", "business development", "revenue generation", "client acquisition"}},
			{Name: "marketing", Phrases: []string{"marketing", "social media", "content creation", "brand management", "digital marketing"}},
			{Name: "project management", Phrases: []string{"project management", "project coordination", "team leadership", "budget management", "timeline management"}},
			{Name: "communication", Phrases: []string{"communication", "presentation", "public speaking", "written communication", "verbal communication", "interpersonal"}},
			{Name: "languages", Phrases: []string{"bilingual", "multilingual", "english", "spanish", "french", "language skills"}},
			{Name: "leadership", Phrases: []string{"leadership", "team management", "supervision", "mentoring", "training", "coaching"}},
			{Name: "teamwork", Phrases: []string{"teamwork", "collaboration", "team player", "cross-functional", "group work"}},
			{Name: "problem solving", Phrases: []string{"problem solving", "troubleshooting", "analytical thinking", "critical thinking", "decision making"}},
			{Name: "time management", Phrases: []string{"time management", "organization", "prioritization", "multitasking", "efficiency"}},
			{Name: "adaptability", Phrases: []string{"adaptability", "flexibility", "learning", "quick learner", "versatile"}},
			{Name: "retail", Phrases: []string{"retail", "sales associate", "cashier", "inventory management", "merchandising", "customer service"}},
			{Name: "healthcare", Phrases: []string{"healthcare", "patient care", "medical", "nursing", "healthcare administration"}},
			{Name: "education", Phrases: []string{"teaching", "tutoring", "education", "curriculum", "student support", "academic"}},
			{Name: "finance", Phrases: []string{"finance", "accounting", "financial analysis", "budgeting", "financial planning"}},
			{Name: "food service", Phrases: []string{"food service", "kitchen", "cooking", "food safety", "restaurant", "catering"}},
			{Name: "quality", Phrases: []string{"quality control", "quality assurance", "quality standards", "attention to detail", "accuracy"}},
			{Name: "safety", Phrases: []string{"safety", "safety standards", "compliance", "regulatory", "health and safety"}},
			{Name: "reliability", Phrases: []string{"reliable", "dependable", "punctual", "responsible", "trustworthy", "consistent"}},
		},
		Related: map[string][]string{
			"customer service": {"retail", "sales", "communication"},
			"retail":           {"customer service", "sales", "inventory management"},
			"sales":            {"customer service", "retail", "communication"},
			"communication":    {"customer service", "presentation", "interpersonal"},
			"leadership":       {"teamwork", "management", "supervision"},
			"teamwork":         {"collaboration", "leadership", "communication"},
			"problem solving":  {"analytical thinking", "troubleshooting", "critical thinking"},
			"time management":  {"organization", "prioritization", "efficiency"},
			"quality":          {"attention to detail", "accuracy", "quality control"},
			"safety":           {"compliance", "safety standards", "regulatory"},
		},
		Synonyms: map[string][]string{
			"customer service":     {"customer interaction", "customer support", "customer satisfaction", "service experience"},
			"customer interaction": {"customer service", "customer support", "customer satisfaction"},
			"pos operation":        {"pos system", "cash handling", "point of sale"},
			"pos system":           {"pos operation", "cash handling", "point of sale"},
			"cash handling":        {"pos operation", "pos system", "cashier", "payment processing"},
			"time management":      {"punctual", "reliable", "dependable", "organization"},
			"attention to detail":  {"quality standards", "accuracy", "precision", "careful"},
			"quality standards":    {"attention to detail", "quality control", "high quality"},
			"teamwork":             {"team collaboration", "team member", "collaboration", "team player"},
			"inventory management": {"stock management", "stocking", "inventory", "product selection"},
			"order processing":     {"order fulfillment", "order accuracy", "order handling"},
			"order fulfillment":    {"order processing", "order accuracy", "fulfillment"},
			"safety standards":     {"safety", "hygiene standards", "food safety", "safety procedures"},
			"hygiene standards":    {"safety standards", "food safety", "cleanliness", "sanitation"},
			"problem solving":      {"conflict resolution", "troubleshooting", "solutions"},
			"conflict resolution":  {"problem solving", "customer service", "dispute resolution"},
			"retail experience":    {"sales experience", "customer service", "retail"},
			"sales experience":     {"retail experience", "customer service", "sales"},
			"service experience":   {"customer service", "retail experience", "service"},
			"bilingual":            {"multilingual", "languages", "language skills"},
			"multilingual":         {"bilingual", "languages", "language skills"},
			"communication skills": {"communication", "interpersonal skills", "verbal communication"},
			"reliable":             {"dependable", "punctual", "responsible", "trustworthy"},
			"dependable":           {"reliable", "punctual", "responsible", "trustworthy"},
			"punctual":             {"reliable", "dependable", "on time", "timely"},
			"responsible":          {"reliable", "dependable", "accountable", "trustworthy"},
		},
		StopWords: defaultStopWords,
		Phrases: []string{
			"customer service", "customer interaction", "customer satisfaction",
			"cash handling", "pos operation", "pos system",
			"time management", "attention to detail", "quality standards",
			"teamwork", "team collaboration", "team member",
			"inventory management", "stock management", "product selection",
			"order processing", "order fulfillment", "order accuracy",
			"safety standards", "food safety", "hygiene standards",
			"problem solving", "conflict resolution", "customer support",
			"fast paced", "high quality", "quality control",
			"retail experience", "sales experience", "service experience",
			"bilingual", "multilingual", "communication skills",
			"reliable", "dependable", "punctual", "responsible",
		},
	}
	t.index()
	return t
}

// defaultStopWords mixes common English function words with job-posting
// boilerplate that carries no signal about the candidate or the role.
var defaultStopWords = []string{
	"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"from", "up", "about", "into", "through", "during", "before", "after",
	"above", "below", "between", "among", "under", "over", "is", "are", "was",
	"were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "must", "can", "this",
	"that", "these", "those", "i", "you", "he", "she", "it", "we", "they", "me",
	"him", "her", "us", "them", "my", "your", "his", "its", "our", "their", "a",
	"an", "some", "any", "all", "both", "each", "every", "other", "another",
	"such", "no", "nor", "not", "only", "own", "same", "so", "than", "too",
	"very", "just", "now",
	// Posting boilerplate.
	"great", "way", "develop", "working", "position", "summary", "associate",
	"walmart", "canada", "omni", "fulfillment", "picks", "packs", "dispenses",
	"online", "orders", "ensuring", "high", "quality", "standard", "accuracy",
	"while", "adhering", "strict", "safety", "food", "hygiene", "standards",
	"achieve", "customer", "satisfaction", "loyalty", "looking", "exciting",
	"job", "service", "retail", "fit", "efficiently", "assembles", "various",
	"temperature", "areas", "care", "mind", "time", "delivery", "customers",
	"attention", "detail", "including", "distinguishing", "similar", "named",
	"products", "exact", "quantity", "correct", "product", "codes", "ensures",
	"picked", "highest", "damaged", "freshest", "selection", "correctly",
	"documents", "labels", "interpretation", "understanding", "documentation",
	"slips", "packaging", "details", "shipping", "optimizes", "tote", "fill",
	"space", "efficient", "manner", "still", "maintained", "balances",
	"responsibilities", "interaction", "offering", "supporting", "issues",
	"resolution", "maintaining", "clean", "hygienic", "area", "immediate",
	"cleanup", "spills", "debris", "void", "packing", "operates", "material",
	"handling", "equipment", "responsible", "exhibits", "behaviors", "support",
	"organization", "mission", "core", "values", "participates", "continuous",
	"improvement", "initiatives", "suggesting", "changes", "limited",
	"operational", "procedures", "productivity", "efficiencies", "conditions",
	"demonstrates", "flexibility", "completing", "adjusting", "assignments",
	"based", "requests", "meeting", "daily", "schedules", "outlined",
	"required", "minimum", "qualifications", "none", "listed", "optional",
	"preferred", "accommodate", "disability", "related", "needs", "applicants",
	"associates", "law", "primary", "location",
}
