package extraction

import "regexp"

// The phrase tables below are the only "resource" the classifier uses.
// They are read-only and shared across all calls.

// sectionHeaders are phrases that title a posting section. A line equal to
// one of these (or starting with "<header>:") is structure, not a requirement.
var sectionHeaders = []string{
	"responsibilities",
	"requirements",
	"qualifications",
	"preferred qualifications",
	"minimum qualifications",
	"about the role",
	"about the team",
	"about the company",
	"about us",
	"about you",
	"benefits",
	"the role",
	"the team",
	"job description",
	"what you'll do",
	"what you will do",
	"what we offer",
	"who you are",
	"why join us",
	"perks",
	"compensation",
	"overview",
	"duties",
}

// introHeaders introduce a list without being requirements themselves.
// Matched as line prefixes.
var introHeaders = []string{
	"you may be a good fit if",
	"you might be a good fit if",
	"you'll be a great fit if",
	"required skills",
	"preferred skills",
	"we're looking for",
	"we are looking for",
	"what we're looking for",
	"what we are looking for",
	"you should have",
	"the ideal candidate",
	"an ideal candidate",
	"in this role, you will",
	"to be successful",
}

// metadataPatterns match administrative lines: salary, deadlines, ids.
var metadataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\$`),
	regexp.MustCompile(`^salary\b`),
	regexp.MustCompile(`^compensation\b`),
	regexp.MustCompile(`^deadline to apply`),
	regexp.MustCompile(`^apply by\b`),
	regexp.MustCompile(`^job id\b`),
	regexp.MustCompile(`^req(uisition)? (id|number)\b`),
	regexp.MustCompile(`^department\b`),
	regexp.MustCompile(`^employment type\b`),
	regexp.MustCompile(`^posted\b`),
	regexp.MustCompile(`^location:`),
}

// roleKeywords flag lines that look like a job title rather than a requirement.
var roleKeywords = []string{
	"manager", "engineer", "developer", "director", "analyst", "designer",
	"scientist", "architect", "consultant", "specialist", "coordinator",
	"administrator", "recruiter", "intern",
}

// responsibilityStems match the leading verb of a duty line. Stems rather
// than full words so both "manage" and "managing" hit.
var responsibilityStems = []string{
	"manag", "build", "lead", "own", "develop", "creat", "design", "driv",
	"deliver", "maintain", "defin", "execut", "coordinat", "overse",
	"implement", "collaborat", "partner", "support", "improv", "ship",
}

// skillNeedPhrases rescue a verb-led line that still states a skill need.
var skillNeedPhrases = []string{
	"experience with",
	"experience in",
	"knowledge of",
	"proficiency",
	"familiar with",
	"familiarity with",
	"skilled in",
	"understanding of",
}

// requirementSignals indicate a line is stating an expectation of the candidate.
var requirementSignals = []string{
	"experience", "years", "degree", "proficient", "proficiency", "ability",
	"able to", "knowledge", "familiarity", "familiar", "skills", "skilled",
	"expertise", "understanding", "background", "track record",
	"certification", "certified", "fluent", "fluency", "competent",
	"capable", "demonstrated", "hands-on", "working knowledge",
	"comfortable with", "must have", "must be", "required", "preferred",
	"willingness", "strong grasp",
}

// nonRequirementPhrases mark mission statements and marketing prose.
var nonRequirementPhrases = []string{
	"our mission",
	"we believe",
	"join us",
	"committed to",
	"we are committed",
	"equal opportunity",
	"we offer",
	"we value",
	"our team is",
	"our company",
	"we're on a mission",
}

// companyIntroPattern matches "at <company>, we ..." mission openers.
var companyIntroPattern = regexp.MustCompile(`^at [a-z0-9&.,'’ -]+, we\b`)

// cityStatePattern matches "City, ST" location lines, optionally
// semicolon-separated: "Austin, TX; Denver, CO".
var cityStatePattern = regexp.MustCompile(
	`^[A-Z][A-Za-z .'-]+,\s*[A-Z]{2}(;\s*[A-Z][A-Za-z .'-]+,\s*[A-Z]{2})*$`)

// preferenceSignals flip a requirement from required to preferred.
var preferenceSignals = []string{
	"preferred", "nice to have", "nice-to-have", "bonus", "ideally",
	"advantage", "a plus", "beneficial", "not required but",
}

// yearsPatterns extract a year count; tried in order, first capture wins.
var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(of)?\s*(experience)?`),
	regexp.MustCompile(`(\d+)-(\d+)\s*years?`),
	regexp.MustCompile(`at least (\d+) years?`),
	regexp.MustCompile(`minimum (\d+) years?`),
}

// Category indicator lists, checked in priority order: logistics first
// (most specific) down to experience (most general).

var logisticsIndicators = []string{
	"location", "remote", "hybrid", "travel", "clearance", "onsite",
	"on-site", "relocate", "relocation", "visa", "authorization",
	"authorized to work", "must be located", "willing to travel",
}

// educationIndicators deliberately use "master's"/"masters" and spaced
// abbreviations instead of bare "master", which false-positives on the verb
// ("master our tooling").
var educationIndicators = []string{
	"degree", "bachelor", "master's", "masters", "mba", "phd", "doctorate",
	"certification", "certified", "university", "college",
	"bs ", "ms ", "ba ", "ma ", "b.s.", "m.s.", "b.a.", "m.a.",
}

var technicalIndicators = []string{
	"python", "java", "sql", "api", "cloud", "aws", "azure", "gcp",
	"docker", "kubernetes", "react", "vue", "angular", "fastapi", "flask",
	"django", "postgresql", "mongodb", "programming", "coding",
	"framework", "library", "tooling", "typescript", "javascript",
	"git", "ci/cd", "microservices", "rest", "golang", "linux",
}

var softSkillIndicators = []string{
	"communication skills", "leadership", "team", "collaborate",
	"interpersonal", "presentation", "organized", "ability to work",
	"stakeholder", "mentoring",
}

var experienceIndicators = []string{"year", "experience", "background"}

// techKeywords is the extraction vocabulary for requirement keywords.
// Kept in this order so extracted keyword lists are deterministic.
var techKeywords = []string{
	"python", "javascript", "typescript", "java", "golang", "rust", "c++",
	"sql", "react", "fastapi", "flask", "django", "spring", "node", "vue",
	"angular", "aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"jenkins", "api", "rest", "graphql", "grpc", "postgresql", "mysql",
	"mongodb", "redis", "elasticsearch", "kafka", "celery", "llm", "ai",
	"ml", "machine learning", "data", "analytics", "etl", "ci/cd", "git",
	"microservices", "linux", "agile",
}

// Bullet markers and list numbering stripped from line starts. Years like
// "5+" must survive, so only leading markers are touched.
var (
	bulletPrefixPattern   = regexp.MustCompile(`^[-*•]\s*`)
	numberedPrefixPattern = regexp.MustCompile(`^\d+\.\s+`)
)
