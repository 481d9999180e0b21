package unsplash

import "time"

// PhotoURLs — адреса изображения в разных размерах.
type PhotoURLs struct {
	Raw     string `json:"raw"`
	Full    string `json:"full"`
	Regular string `json:"regular"`
	Small   string `json:"small"`
	Thumb   string `json:"thumb"`
}

// BySize возвращает адрес для именованного размера или пустую строку.
func (u PhotoURLs) BySize(size Size) string {
	switch size {
	case SizeRaw:
		return u.Raw
	case SizeFull:
		return u.Full
	case SizeRegular:
		return u.Regular
	case SizeSmall:
		return u.Small
	case SizeThumb:
		return u.Thumb
	default:
		return ""
	}
}

type PhotoLinks struct {
	Self             string `json:"self"`
	HTML             string `json:"html"`
	Download         string `json:"download"`
	DownloadLocation string `json:"download_location"`
}

type Tag struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

type Sponsorship struct {
	ImpressionURLs []string `json:"impression_urls"`
	Tagline        string   `json:"tagline"`
	TaglineURL     string   `json:"tagline_url"`
	Sponsor        *User    `json:"sponsor"`
}

// Photo — фотография в том виде, в каком её отдаёт API.
type Photo struct {
	ID             string       `json:"id"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	PromotedAt     *time.Time   `json:"promoted_at,omitempty"`
	Width          int          `json:"width"`
	Height         int          `json:"height"`
	Color          string       `json:"color"`
	BlurHash       string       `json:"blur_hash,omitempty"`
	Description    string       `json:"description,omitempty"`
	AltDescription string       `json:"alt_description,omitempty"`
	URLs           PhotoURLs    `json:"urls"`
	Links          PhotoLinks   `json:"links"`
	Likes          int          `json:"likes"`
	LikedByUser    bool         `json:"liked_by_user"`
	Sponsorship    *Sponsorship `json:"sponsorship,omitempty"`
	User           *User        `json:"user,omitempty"`
	Tags           []Tag        `json:"tags,omitempty"`
}

type ProfileImage struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

type UserLinks struct {
	Self   string `json:"self"`
	HTML   string `json:"html"`
	Photos string `json:"photos"`
	Likes  string `json:"likes"`
}

// User — автор фотографий.
type User struct {
	ID                string       `json:"id"`
	Username          string       `json:"username"`
	Name              string       `json:"name"`
	FirstName         string       `json:"first_name"`
	LastName          string       `json:"last_name"`
	InstagramUsername string       `json:"instagram_username"`
	TwitterUsername   string       `json:"twitter_username"`
	PortfolioURL      string       `json:"portfolio_url"`
	ProfileImage      ProfileImage `json:"profile_image"`
	Links             UserLinks    `json:"links"`
}

type CollectionLinks struct {
	Self    string `json:"self"`
	HTML    string `json:"html"`
	Photos  string `json:"photos"`
	Related string `json:"related"`
}

// Collection — подборка фотографий.
type Collection struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	PublishedAt     time.Time       `json:"published_at"`
	LastCollectedAt time.Time       `json:"last_collected_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Featured        bool            `json:"featured"`
	TotalPhotos     int             `json:"total_photos"`
	Private         bool            `json:"private"`
	ShareKey        string          `json:"share_key"`
	CoverPhoto      *Photo          `json:"cover_photo,omitempty"`
	User            *User           `json:"user,omitempty"`
	Links           CollectionLinks `json:"links"`
}

type TopicLinks struct {
	Self   string `json:"self"`
	HTML   string `json:"html"`
	Photos string `json:"photos"`
}

// Topic — тема, курируемая редакцией Unsplash.
type Topic struct {
	ID                   string     `json:"id"`
	Slug                 string     `json:"slug"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	PublishedAt          time.Time  `json:"published_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
	StartsAt             time.Time  `json:"starts_at"`
	EndsAt               *time.Time `json:"ends_at,omitempty"`
	OnlySubmissionsAfter *time.Time `json:"only_submissions_after,omitempty"`
	Visibility           string     `json:"visibility"`
	Featured             bool       `json:"featured"`
	TotalPhotos          int        `json:"total_photos"`
	Links                TopicLinks `json:"links"`
	Status               string     `json:"status"`
	Owners               []User     `json:"owners,omitempty"`
	TopContributors      []User     `json:"top_contributors,omitempty"`
	CoverPhoto           *Photo     `json:"cover_photo,omitempty"`
	PreviewPhotos        []Photo    `json:"preview_photos,omitempty"`
}

// SearchResult — одна страница результатов поиска.
type SearchResult struct {
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
	Results    []Photo `json:"results"`
}

// Download — ответ на отметку о скачивании: прямая ссылка на файл.
type Download struct {
	URL string `json:"url"`
}

// Like — ответ на like/unlike.
type Like struct {
	Photo *Photo `json:"photo,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// Portfolio — ответ users/{username}/portfolio.
type Portfolio struct {
	URL string `json:"url"`
}

type StatisticsValue struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

type Historical struct {
	Change     int64             `json:"change"`
	Average    float64           `json:"average"`
	Resolution string            `json:"resolution"`
	Quantity   int               `json:"quantity"`
	Values     []StatisticsValue `json:"values,omitempty"`
}

type StatisticsData struct {
	Total      int64      `json:"total"`
	Historical Historical `json:"historical"`
}

// UserStatistics — статистика скачиваний и просмотров пользователя.
type UserStatistics struct {
	Username  string         `json:"username"`
	Downloads StatisticsData `json:"downloads"`
	Views     StatisticsData `json:"views"`
}

// PhotoStatistics — статистика одной фотографии.
type PhotoStatistics struct {
	ID        string         `json:"id"`
	Downloads StatisticsData `json:"downloads"`
	Views     StatisticsData `json:"views"`
	Likes     StatisticsData `json:"likes"`
}
