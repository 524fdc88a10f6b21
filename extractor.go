package docprep

// Framework identifies the generator of a saved documentation page.
type Framework string

// Known documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
)

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// URL is the page's canonical URL, if declared.
	URL string

	// ContentHTML is the main content as clean HTML.
	ContentHTML string

	// Framework is the detected page generator, if any.
	Framework Framework
}

// Extractor extracts main content from saved HTML pages, removing site chrome.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter renders extracted HTML as markdown for the cleaner.
type Converter interface {
	Convert(contentHTML string) (string, error)
}
