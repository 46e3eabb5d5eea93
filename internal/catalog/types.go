package catalog

// Dimension is a named group of mutually exclusive categories tracked by one
// score tally. Categories are listed in their declared order, which is also
// the tie-break order when picking a dominant category.
type Dimension struct {
	ID         string   `yaml:"id" json:"id" validate:"required"`
	Title      string   `yaml:"title" json:"title" validate:"required"`
	Categories []string `yaml:"categories" json:"categories" validate:"min=2,unique,dive,required"`
}

// HasCategory reports whether key is one of the dimension's categories.
func (d Dimension) HasCategory(key string) bool {
	return d.CategoryIndex(key) >= 0
}

// CategoryIndex returns the declared position of key, or -1.
func (d Dimension) CategoryIndex(key string) int {
	for i, c := range d.Categories {
		if c == key {
			return i
		}
	}
	return -1
}

// Option is one selectable answer of a question. Category is the option key
// within the question's own dimension. Also lists extra contributions to
// other dimensions (dimension ID -> category).
type Option struct {
	Category string            `yaml:"category" json:"category" validate:"required"`
	Text     string            `yaml:"text" json:"text" validate:"required"`
	Also     map[string]string `yaml:"also,omitempty" json:"also,omitempty"`
}

// Question is an immutable question descriptor.
type Question struct {
	ID        string   `yaml:"id" json:"id" validate:"required"`
	SectionID string   `yaml:"-" json:"section_id"`
	Prompt    string   `yaml:"prompt" json:"prompt" validate:"required"`
	Dimension string   `yaml:"dimension" json:"dimension" validate:"required"`
	Options   []Option `yaml:"options" json:"options" validate:"min=2,dive"`
}

// Option returns the option with the given category key.
func (q Question) Option(category string) (Option, bool) {
	for _, o := range q.Options {
		if o.Category == category {
			return o, true
		}
	}
	return Option{}, false
}

// Section is an ordered group of questions sharing a topic.
type Section struct {
	ID          string     `yaml:"id" json:"id" validate:"required"`
	Title       string     `yaml:"title" json:"title" validate:"required"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Questions   []Question `yaml:"questions" json:"questions" validate:"min=1,dive"`
}

// Constitution configures the composite "constitutional type" label built
// from the dominant categories of two or more dimensions.
type Constitution struct {
	Dimensions   []string                     `yaml:"dimensions" json:"dimensions" validate:"min=2,unique"`
	Separator    string                       `yaml:"separator" json:"separator"`
	Phrases      map[string]map[string]string `yaml:"phrases" json:"phrases"`
	Undetermined string                       `yaml:"undetermined" json:"undetermined" validate:"required"`
}

// Recommendations configures the recommendation lists. Entries are keyed
// dimension -> category -> kind.
type Recommendations struct {
	Primary   string                                   `yaml:"primary" json:"primary" validate:"required"`
	Secondary string                                   `yaml:"secondary" json:"secondary" validate:"required"`
	Threshold int                                      `yaml:"threshold" json:"threshold" validate:"gte=0,lte=100"`
	Kinds     []string                                 `yaml:"kinds" json:"kinds" validate:"min=1,unique"`
	Entries   map[string]map[string]map[string][]string `yaml:"entries" json:"entries"`
	Fallback  map[string][]string                      `yaml:"fallback" json:"fallback"`
}

// Catalog is the static, ordered collection of sections and questions plus
// the lookup tables used to interpret results.
type Catalog struct {
	ID              string                       `yaml:"id" json:"id" validate:"required"`
	Title           string                       `yaml:"title" json:"title" validate:"required"`
	Description     string                       `yaml:"description,omitempty" json:"description,omitempty"`
	Dimensions      []Dimension                  `yaml:"dimensions" json:"dimensions" validate:"min=1,dive"`
	Sections        []Section                    `yaml:"sections" json:"sections" validate:"min=1,dive"`
	Interpretations map[string]map[string]string `yaml:"interpretations" json:"interpretations"`
	Constitution    Constitution                 `yaml:"constitution" json:"constitution"`
	Recommendations Recommendations              `yaml:"recommendations" json:"recommendations"`

	questionIndex  map[string]*Question
	sectionIndex   map[string]*Section
	dimensionIndex map[string]int
	order          []*Question
}

// Score is a single tally contribution: one category in one dimension.
type Score struct {
	Dimension string
	Category  string
}
