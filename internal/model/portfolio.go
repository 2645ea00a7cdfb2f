package model

// Portfolio is the content shown across the desktop's applications.
type Portfolio struct {
	PersonalInfo           PersonalInfo            `json:"personalInfo" yaml:"personal_info"`
	SocialLinks            SocialLinks             `json:"socialLinks" yaml:"social_links"`
	Bio                    Bio                     `json:"bio" yaml:"bio"`
	ResearchInterests      []string                `json:"researchInterests" yaml:"research_interests"`
	CurrentlyReading       []Reading               `json:"currentlyReading" yaml:"currently_reading"`
	CurrentlyReadingBooks  []Book                  `json:"currentlyReadingBooks,omitempty" yaml:"currently_reading_books,omitempty"`
	Education              []Education             `json:"education" yaml:"education"`
	Experience             []Experience            `json:"experience" yaml:"experience"`
	TechStack              TechStack               `json:"techStack" yaml:"tech_stack"`
	SpokenLanguages        []SpokenLanguage        `json:"spokenLanguages" yaml:"spoken_languages"`
	Projects               ProjectGroups           `json:"projects" yaml:"projects"`
	CollaborationInterests []CollaborationInterest `json:"collaborationInterests" yaml:"collaboration_interests"`
	SystemInfo             []SystemInfo            `json:"systemInfo" yaml:"system_info"`
	Games                  []Game                  `json:"games,omitempty" yaml:"games,omitempty"`
	Music                  []Song                  `json:"music,omitempty" yaml:"music,omitempty"`
	Footer                 Footer                  `json:"footer" yaml:"footer"`
}

// PersonalInfo holds identity and contact details.
type PersonalInfo struct {
	Name            string   `json:"name" yaml:"name"`
	Pronunciation   string   `json:"pronunciation" yaml:"pronunciation"`
	Email           string   `json:"email" yaml:"email"`
	Role            string   `json:"role" yaml:"role"`
	CurrentPosition string   `json:"currentPosition" yaml:"current_position"`
	Work            string   `json:"work" yaml:"work"`
	Location        Location `json:"location" yaml:"location"`
	Timezone        []string `json:"timezone" yaml:"timezone"`
}

// Location is a primary and secondary place name.
type Location struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
}

// SocialLinks are profile URLs.
type SocialLinks struct {
	GitHub   string `json:"github" yaml:"github"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	Twitter  string `json:"twitter" yaml:"twitter"`
	Substack string `json:"substack" yaml:"substack"`
	Medium   string `json:"medium" yaml:"medium"`
}

// Bio is a short and a full biography.
type Bio struct {
	Short string `json:"short" yaml:"short"`
	Full  string `json:"full" yaml:"full"`
}

// Reading is a link currently being read.
type Reading struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Book is an entry on the bookshelf.
type Book struct {
	Title  string `json:"title" yaml:"title"`
	Type   string `json:"type" yaml:"type"`
	Author string `json:"author" yaml:"author"`
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Image  string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Education is one degree.
type Education struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Location    string `json:"location" yaml:"location"`
	Years       string `json:"years" yaml:"years"`
	Status      string `json:"status" yaml:"status"`
	Description string `json:"description" yaml:"description"`
}

// Experience is one role.
type Experience struct {
	Title            string   `json:"title" yaml:"title"`
	Company          string   `json:"company" yaml:"company"`
	Period           string   `json:"period" yaml:"period"`
	Focus            string   `json:"focus" yaml:"focus"`
	Location         string   `json:"location,omitempty" yaml:"location,omitempty"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
}

// TechStack groups languages, frameworks and tools.
type TechStack struct {
	Languages          []Language `json:"languages" yaml:"languages"`
	MLFrameworks       []string   `json:"mlFrameworks" yaml:"ml_frameworks"`
	WebFrameworks      []string   `json:"webFrameworks" yaml:"web_frameworks"`
	Tools              []string   `json:"tools" yaml:"tools"`
	CurrentlyExploring []string   `json:"currentlyExploring" yaml:"currently_exploring"`
}

// Language is a programming language with a proficiency label.
type Language struct {
	Name  string `json:"name" yaml:"name"`
	Level string `json:"level" yaml:"level"`
	Color string `json:"color" yaml:"color"`
}

// SpokenLanguage is a natural language with proficiency.
type SpokenLanguage struct {
	Language    string `json:"language" yaml:"language"`
	Flag        string `json:"flag" yaml:"flag"`
	Level       string `json:"level" yaml:"level"`
	Proficiency int    `json:"proficiency" yaml:"proficiency"`
}

// ProjectGroups holds portfolio projects by category.
type ProjectGroups struct {
	Professional []PortfolioProject `json:"professional" yaml:"professional"`
	Academic     []PortfolioProject `json:"academic" yaml:"academic"`
	Personal     []PortfolioProject `json:"personal" yaml:"personal"`
	Research     []PortfolioProject `json:"research" yaml:"research"`
}

// PortfolioProject is a project as written in the portfolio file.
type PortfolioProject struct {
	Title       string            `json:"title" yaml:"title"`
	Icon        string            `json:"icon" yaml:"icon"`
	Description string            `json:"description" yaml:"description"`
	Tech        []string          `json:"tech" yaml:"tech"`
	Impact      string            `json:"impact,omitempty" yaml:"impact,omitempty"`
	Status      string            `json:"status,omitempty" yaml:"status,omitempty"`
	Year        string            `json:"year,omitempty" yaml:"year,omitempty"`
	BuiltWith   string            `json:"builtWith,omitempty" yaml:"built_with,omitempty"`
	Links       map[string]string `json:"links,omitempty" yaml:"links,omitempty"`
}

// CollaborationInterest is a topic open for collaboration.
type CollaborationInterest struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// SystemInfo is a labelled fact shown in the about panel.
type SystemInfo struct {
	Icon  string `json:"icon" yaml:"icon"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Game is an entry in the games window.
type Game struct {
	Title       string `json:"title" yaml:"title"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	LastPlayed  string `json:"lastPlayed,omitempty" yaml:"last_played,omitempty"`
	AddedDate   string `json:"addedDate,omitempty" yaml:"added_date,omitempty"`
}

// Song is a playlist entry. Src is a local audio file; YouTubeID is used when
// no local file exists.
type Song struct {
	Name      string `json:"name" yaml:"name"`
	Artist    string `json:"artist" yaml:"artist"`
	Genre     string `json:"genre" yaml:"genre"`
	Src       string `json:"src,omitempty" yaml:"src,omitempty"`
	Image     string `json:"img,omitempty" yaml:"img,omitempty"`
	YouTubeID string `json:"youtubeId,omitempty" yaml:"youtube_id,omitempty"`
}

// Label returns "Artist - Name", or just the name when the artist is unknown.
func (s Song) Label() string {
	if s.Artist == "" {
		return s.Name
	}
	return s.Artist + " - " + s.Name
}

// Footer is the page footer text.
type Footer struct {
	Tagline     string `json:"tagline" yaml:"tagline"`
	Copyright   string `json:"copyright" yaml:"copyright"`
	LastUpdated string `json:"lastUpdated" yaml:"last_updated"`
}
