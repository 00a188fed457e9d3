package wizard

import "sort"

// TechCatalog groups suggested technologies by category for the setup
// wizard. The names match what GitHub's language detection reports where
// a language is involved, so focus-area matching works out of the box.
var TechCatalog = map[string][]string{
	"Frontend": {
		"React", "Vue.js", "Angular", "Svelte", "Next.js", "Nuxt.js",
		"Astro", "HTML", "CSS", "SCSS", "Tailwind CSS", "Bootstrap",
	},
	"Backend": {
		"Node.js", "Python", "Go", "Rust", "Java", "C#", "Ruby", "PHP",
		"Elixir", "Kotlin",
	},
	"Mobile": {
		"React Native", "Flutter", "Swift", "Kotlin", "Dart",
	},
	"Database": {
		"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite", "DynamoDB",
		"Cassandra",
	},
	"DevOps & Cloud": {
		"Docker", "Kubernetes", "Terraform", "AWS", "GCP", "Azure",
		"GitHub Actions", "GitLab CI", "Jenkins",
	},
	"Data & ML": {
		"Pandas", "NumPy", "TensorFlow", "PyTorch", "Scikit-learn", "Spark",
	},
	"Languages": {
		"TypeScript", "JavaScript", "Python", "Go", "Rust", "Java", "C++",
		"C", "Ruby", "PHP", "Scala", "Haskell", "Lua", "Zig",
	},
	"Tools": {
		"Git", "Vim", "VS Code", "Linux", "Nginx", "GraphQL", "REST", "gRPC",
	},
}

// AllTechs returns every catalog entry once, sorted alphabetically.
func AllTechs() []string {
	seen := make(map[string]bool)
	var techs []string
	for _, entries := range TechCatalog {
		for _, tech := range entries {
			if !seen[tech] {
				seen[tech] = true
				techs = append(techs, tech)
			}
		}
	}
	sort.Strings(techs)
	return techs
}
