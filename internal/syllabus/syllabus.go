// Package syllabus holds the study catalog: which modules exist, what
// topics each module covers, and which hands-on practice tasks belong to
// each topic. The catalog is loaded once at startup and never mutated.
package syllabus

import (
	"encoding/json"
	"os"
	"strings"
)

// DefaultModule is the module used when a tool receives no module name.
const DefaultModule = "generative ai"

// Catalog maps modules to topics and topics to practice tasks.
type Catalog struct {
	modules map[string][]string
	tasks   map[string][]string
	order   []string
}

// catalogFile is the JSON shape accepted by LoadFile.
type catalogFile struct {
	Modules map[string][]string `json:"modules"`
	Tasks   map[string][]string `json:"practice_tasks"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return build(defaultModules, defaultTasks)
}

// LoadFile reads a catalog from a JSON file. Entries replace the built-in
// catalog entirely.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return build(f.Modules, f.Tasks), nil
}

func build(modules map[string][]string, tasks map[string][]string) *Catalog {
	c := &Catalog{
		modules: make(map[string][]string, len(modules)),
		tasks:   make(map[string][]string, len(tasks)),
	}
	for name, topics := range modules {
		key := Normalize(name)
		c.modules[key] = topics
		c.order = append(c.order, key)
	}
	for topic, list := range tasks {
		c.tasks[Normalize(topic)] = list
	}
	return c
}

// Normalize canonicalizes a module or topic name for lookup.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Modules returns the known module names.
func (c *Catalog) Modules() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Topics returns the ordered topic list for a module, or false if the
// module is unknown. Lookup is case and whitespace insensitive.
func (c *Catalog) Topics(module string) ([]string, bool) {
	topics, ok := c.modules[Normalize(module)]
	return topics, ok
}

// Tasks returns the practice tasks for a topic.
func (c *Catalog) Tasks(topic string) []string {
	return c.tasks[Normalize(topic)]
}

// Len reports how many modules the catalog holds.
func (c *Catalog) Len() int {
	return len(c.modules)
}

var defaultModules = map[string][]string{
	DefaultModule: {
		"LLM fundamentals",
		"Prompt engineering",
		"OpenAI & Groq APIs",
		"LangChain basics",
		"Agents and Tools",
		"RAG",
		"Agent security & guardrails",
	},
}

var defaultTasks = map[string][]string{
	"LLM fundamentals": {
		"Explain in your own words what an LLM is and how it is trained.",
		"Compare two LLM architectures and list their pros/cons.",
	},
	"Prompt engineering": {
		"Write prompts in zero-shot, few-shot and chain-of-thought styles.",
		"Rewrite a vague prompt into a precise, constrained one.",
	},
	"LangChain basics": {
		"Build a simple LangChain LLMChain using a PromptTemplate.",
		"Create a LangChain chain that calls two steps in sequence.",
	},
	"Agents and Tools": {
		"Create a ReAct agent that uses at least two tools.",
		"Implement a custom LangChain tool and expose it to an agent.",
	},
	"RAG": {
		"Implement a basic RAG pipeline using a single PDF.",
		"Experiment with different chunk sizes and compare answer quality.",
	},
	"Agent security & guardrails": {
		"Design a simple prompt-based safety policy for your agent.",
		"Add checks to block obviously unsafe or irrelevant queries.",
	},
}
