package discovery

// Document is a Google API Discovery document. Only the parts needed to build
// bindings are decoded.
type Document struct {
	Kind        string               `json:"kind" yaml:"kind"`
	Name        string               `json:"name" yaml:"name"`
	Version     string               `json:"version" yaml:"version"`
	Title       string               `json:"title" yaml:"title"`
	Description string               `json:"description" yaml:"description"`
	RootURL     string               `json:"rootUrl" yaml:"rootUrl"`
	ServicePath string               `json:"servicePath" yaml:"servicePath"`
	Auth        *Auth                `json:"auth,omitempty" yaml:"auth,omitempty"`
	Parameters  map[string]*Param    `json:"parameters" yaml:"parameters"`
	Resources   map[string]*Resource `json:"resources" yaml:"resources"`
	Methods     map[string]*Method   `json:"methods" yaml:"methods"`
	Schemas     map[string]*Schema   `json:"schemas" yaml:"schemas"`
}

// Auth holds the OAuth 2.0 scopes a service declares.
type Auth struct {
	OAuth2 struct {
		Scopes map[string]struct {
			Description string `json:"description" yaml:"description"`
		} `json:"scopes" yaml:"scopes"`
	} `json:"oauth2" yaml:"oauth2"`
}

type Resource struct {
	Resources map[string]*Resource `json:"resources" yaml:"resources"`
	Methods   map[string]*Method   `json:"methods" yaml:"methods"`
}

type Method struct {
	ID             string            `json:"id" yaml:"id"`
	Path           string            `json:"path" yaml:"path"`
	HTTPMethod     string            `json:"httpMethod" yaml:"httpMethod"`
	Description    string            `json:"description" yaml:"description"`
	Parameters     map[string]*Param `json:"parameters" yaml:"parameters"`
	ParameterOrder []string          `json:"parameterOrder" yaml:"parameterOrder"`
	Request        *SchemaRef        `json:"request,omitempty" yaml:"request,omitempty"`
	Response       *SchemaRef        `json:"response,omitempty" yaml:"response,omitempty"`
	Scopes         []string          `json:"scopes" yaml:"scopes"`
}

type Param struct {
	Location    string   `json:"location" yaml:"location"`
	Type        string   `json:"type" yaml:"type"`
	Format      string   `json:"format" yaml:"format"`
	Description string   `json:"description" yaml:"description"`
	Enum        []string `json:"enum" yaml:"enum"`
	Default     string   `json:"default" yaml:"default"`
	Required    bool     `json:"required" yaml:"required"`
	Repeated    bool     `json:"repeated" yaml:"repeated"`
}

type SchemaRef struct {
	Ref string `json:"$ref" yaml:"$ref"`
}

type Schema struct {
	ID                   string             `json:"id" yaml:"id"`
	Ref                  string             `json:"$ref" yaml:"$ref"`
	Type                 string             `json:"type" yaml:"type"`
	Format               string             `json:"format" yaml:"format"`
	Description          string             `json:"description" yaml:"description"`
	Enum                 []string           `json:"enum" yaml:"enum"`
	Properties           map[string]*Schema `json:"properties" yaml:"properties"`
	Items                *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
	AdditionalProperties *Schema            `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`
}
