package classify

// DomainOther is the sentinel returned when no keyword matches a text.
const DomainOther = "Other"

// Experience tier labels. Exactly one of these is assigned to every resume.
const (
	TierFresher = "Fresher, 0-1 years"
	TierJunior  = "Junior, 1-3 years"
	TierMid     = "Mid-level, 3-6 years"
	TierSenior  = "Senior, 6+ years"
)

// DomainKeywords pairs a domain label with its keyword phrases.
// Slice order is the tie-break order: when two domains score equally,
// the one declared first wins.
type DomainKeywords struct {
	Name     string
	Keywords []string
}

// defaultDomains is the built-in keyword table. Keywords are matched as
// case-insensitive substrings, so multi-word phrases count whole mentions.
var defaultDomains = []DomainKeywords{
	{
		Name: "Software Engineering",
		Keywords: []string{
			"python", "java", "javascript", "typescript", "golang", "c++",
			"react", "angular", "vue", "django", "flask", "spring boot",
			"node.js", "rest api", "backend", "frontend", "full stack",
			"software engineer", "developer", "git", "docker", "kubernetes",
			"microservices", "sql",
		},
	},
	{
		Name: "Data Science",
		Keywords: []string{
			"machine learning", "deep learning", "data science",
			"data scientist", "data analysis", "pandas", "numpy",
			"tensorflow", "pytorch", "scikit-learn", "statistics",
			"natural language processing", "computer vision", "big data",
			"spark", "hadoop", "tableau", "power bi", "data visualization",
		},
	},
	{
		Name: "Marketing",
		Keywords: []string{
			"marketing", "seo", "sem", "social media", "content strategy",
			"brand management", "campaign", "google ads", "copywriting",
			"email marketing", "market research", "growth hacking",
		},
	},
	{
		Name: "Finance",
		Keywords: []string{
			"accounting", "financial analysis", "financial reporting",
			"audit", "taxation", "budgeting", "bookkeeping",
			"accounts payable", "accounts receivable", "investment",
			"banking", "cpa", "quickbooks", "payroll processing",
		},
	},
	{
		Name: "Human Resources",
		Keywords: []string{
			"human resources", "recruitment", "talent acquisition",
			"onboarding", "employee relations", "hr policies",
			"performance management", "hris", "compensation", "benefits administration",
		},
	},
	{
		Name: "Design",
		Keywords: []string{
			"graphic design", "ui design", "ux design", "user experience",
			"user interface", "photoshop", "illustrator", "figma", "sketch",
			"adobe creative", "typography", "wireframe", "prototyping",
		},
	},
	{
		Name: "Sales",
		Keywords: []string{
			"sales", "business development", "lead generation", "crm",
			"salesforce", "cold calling", "negotiation",
			"account management", "quota", "sales pipeline", "b2b",
		},
	},
	{
		Name: "Healthcare",
		Keywords: []string{
			"nurse", "nursing", "patient care", "clinical", "medical records",
			"physician", "healthcare", "hospital", "pharmacy",
			"registered nurse", "phlebotomy", "emergency care",
		},
	},
	{
		Name: "Education",
		Keywords: []string{
			"teaching", "teacher", "curriculum", "classroom management",
			"lesson plan", "tutoring", "instructor", "special education",
			"student assessment", "pedagogy",
		},
	},
}

// DefaultDomains returns a copy of the built-in keyword table.
func DefaultDomains() []DomainKeywords {
	out := make([]DomainKeywords, len(defaultDomains))
	copy(out, defaultDomains)
	return out
}
