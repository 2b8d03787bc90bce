package vocab

// builtinEntries is the default skill vocabulary shipped with the engine.
// Skills are grouped loosely by category; aliases carry the common resume
// spellings of each skill in normalized (lowercase, tokenized) form.
var builtinEntries = []Entry{
	// Languages
	{Name: "Go", Aliases: []string{"golang", "go lang"}},
	{Name: "JavaScript", Aliases: []string{"js", "java script"}},
	{Name: "TypeScript", Aliases: []string{"ts"}},
	{Name: "Python", Aliases: []string{"python3", "python 3"}},
	{Name: "Java"},
	{Name: "C"},
	{Name: "C++", Aliases: []string{"cpp", "cplusplus"}},
	{Name: "C#", Aliases: []string{"csharp", "c sharp"}},
	{Name: "Ruby"},
	{Name: "PHP"},
	{Name: "Rust"},
	{Name: "Kotlin"},
	{Name: "Swift"},
	{Name: "Scala"},
	{Name: "R"},
	{Name: "SQL"},
	{Name: "HTML", Aliases: []string{"html5"}},
	{Name: "CSS", Aliases: []string{"css3"}},

	// Frontend
	{Name: "React", Aliases: []string{"react.js", "reactjs"}},
	{Name: "Angular", Aliases: []string{"angular.js", "angularjs"}},
	{Name: "Vue", Aliases: []string{"vue.js", "vuejs"}},
	{Name: "Next.js", Aliases: []string{"nextjs"}},
	{Name: "Redux"},
	{Name: "Tailwind", Aliases: []string{"tailwindcss", "tailwind css"}},
	{Name: "Bootstrap"},

	// Backend
	{Name: "Node.js", Aliases: []string{"nodejs", "node"}},
	{Name: "Express", Aliases: []string{"express.js", "expressjs"}},
	{Name: "Django"},
	{Name: "Flask"},
	{Name: "Spring", Aliases: []string{"spring boot", "springboot"}},
	{Name: "Rails", Aliases: []string{"ruby on rails"}},
	{Name: "Laravel"},
	{Name: "GraphQL"},
	{Name: "REST API", Aliases: []string{"rest", "rest apis", "restful api"}},
	{Name: "gRPC"},
	{Name: "Microservices", Aliases: []string{"micro services"}},

	// Data stores
	{Name: "PostgreSQL", Aliases: []string{"postgres"}},
	{Name: "MySQL"},
	{Name: "MongoDB", Aliases: []string{"mongo"}},
	{Name: "Redis"},
	{Name: "Elasticsearch", Aliases: []string{"elastic search"}},
	{Name: "SQLite"},
	{Name: "Cassandra"},
	{Name: "DynamoDB"},

	// Cloud / DevOps
	{Name: "AWS", Aliases: []string{"amazon web services"}},
	{Name: "GCP", Aliases: []string{"google cloud", "google cloud platform"}},
	{Name: "Azure"},
	{Name: "Docker"},
	{Name: "Kubernetes", Aliases: []string{"k8s"}},
	{Name: "Terraform"},
	{Name: "Jenkins"},
	{Name: "CI/CD", Aliases: []string{"ci cd", "cicd", "continuous integration"}},
	{Name: "Linux"},
	{Name: "Git", Aliases: []string{"github", "gitlab"}},
	{Name: "Nginx"},
	{Name: "Kafka", Aliases: []string{"apache kafka"}},
	{Name: "RabbitMQ"},

	// Data / ML
	{Name: "Machine Learning", Aliases: []string{"ml"}},
	{Name: "Deep Learning"},
	{Name: "Data Analysis", Aliases: []string{"data analytics"}},
	{Name: "Data Science"},
	{Name: "Pandas"},
	{Name: "NumPy"},
	{Name: "TensorFlow"},
	{Name: "PyTorch"},
	{Name: "NLP", Aliases: []string{"natural language processing"}},
	{Name: "Spark", Aliases: []string{"apache spark"}},

	// Practices
	{Name: "Agile", Aliases: []string{"scrum"}},
	{Name: "TDD", Aliases: []string{"test driven development"}},
	{Name: "Unit Testing"},
	{Name: "System Design"},
	{Name: "Data Structures"},
	{Name: "Algorithms"},
	{Name: "OOP", Aliases: []string{"object oriented programming"}},
	{Name: "Distributed Systems"},

	// Soft skills
	{Name: "Communication", Aliases: []string{"communication skills"}},
	{Name: "Leadership"},
	{Name: "Teamwork", Aliases: []string{"team work", "collaboration"}},
	{Name: "Problem Solving"},
	{Name: "Project Management"},
}

// Builtin returns the default vocabulary shipped with the engine. The
// builtin table is validated at build time by tests, so construction
// cannot fail.
func Builtin() *Vocabulary {
	v, err := New(builtinEntries)
	if err != nil {
		panic("vocab: builtin vocabulary invalid: " + err.Error())
	}
	return v
}
