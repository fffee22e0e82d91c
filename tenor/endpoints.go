package tenor

// Endpoint identifies one operation of the Tenor v2 API by its path segment.
type Endpoint string

const (
	EndpointSearch            Endpoint = "search"
	EndpointFeatured          Endpoint = "featured"
	EndpointCategories        Endpoint = "categories"
	EndpointSearchSuggestions Endpoint = "search_suggestions"
	EndpointAutocomplete      Endpoint = "autocomplete"
	EndpointTrendingTerms     Endpoint = "trending_terms"
	EndpointRegisterShare     Endpoint = "registershare"
	EndpointPosts             Endpoint = "posts"
)

var endpoints = [...]Endpoint{
	EndpointSearch,
	EndpointFeatured,
	EndpointCategories,
	EndpointSearchSuggestions,
	EndpointAutocomplete,
	EndpointTrendingTerms,
	EndpointRegisterShare,
	EndpointPosts,
}

// Endpoints returns every known endpoint.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(endpoints))
	copy(out, endpoints[:])
	return out
}

// Path returns the URL path segment of the endpoint
func (e Endpoint) Path() string {
	return string(e)
}

// Valid reports whether e is one of the known endpoints
func (e Endpoint) Valid() bool {
	for _, known := range endpoints {
		if e == known {
			return true
		}
	}
	return false
}

func (e Endpoint) String() string {
	return string(e)
}
