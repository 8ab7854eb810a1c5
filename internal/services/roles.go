package services

// RoleCatalog holds the static job-role tables: minimum certification
// requirements for the prediction engine and expected resume keywords for
// the local analyzer. It is built once at startup and read-only afterwards.
type RoleCatalog struct {
	names        []string
	requirements map[string]int
	keywords     map[string][]string
}

func NewDefaultRoleCatalog() *RoleCatalog {
	names := []string{
		"Software Engineer",
		"Data Scientist",
		"Web Developer",
		"Data Analyst",
		"DevOps Engineer",
		"Machine Learning Engineer",
		"Full Stack Developer",
		"Backend Developer",
		"Frontend Developer",
		"Cybersecurity Analyst",
	}

	requirements := make(map[string]int, len(names))
	for _, name := range names {
		requirements[name] = 1
	}

	keywords := map[string][]string{
		"Software Engineer": {"python", "java", "c++", "api", "algorithms"},
		"Data Scientist":    {"data", "machine learning", "pandas", "numpy", "tensorflow", "pytorch"},
		"Web Developer":     {"html", "css", "javascript", "react", "node"},
		"Data Analyst":      {"sql", "excel", "tableau", "power bi", "analytics"},
	}

	return &RoleCatalog{
		names:        names,
		requirements: requirements,
		keywords:     keywords,
	}
}

// Names returns the known role names in declaration order.
func (c *RoleCatalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// DefaultRole is used when a request carries no job role.
func (c *RoleCatalog) DefaultRole() string {
	return c.names[0]
}

// MinCertifications returns the certification floor for a role. Unknown
// roles default to 0.
func (c *RoleCatalog) MinCertifications(role string) int {
	return c.requirements[role]
}

// Keywords returns the expected resume keywords for a role. Roles without a
// configured set yield an empty list.
func (c *RoleCatalog) Keywords(role string) []string {
	kws := c.keywords[role]
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}
