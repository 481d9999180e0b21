package unsplash

// Orientation — ориентация фотографии.
type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
	OrientationSquarish  Orientation = "squarish"
)

// ContentFilter — уровень фильтрации контента.
type ContentFilter string

const (
	ContentFilterLow  ContentFilter = "low"
	ContentFilterHigh ContentFilter = "high"
)

// Color — фильтр по цвету в поиске.
type Color string

const (
	ColorBlackAndWhite Color = "black_and_white"
	ColorBlack         Color = "black"
	ColorWhite         Color = "white"
	ColorYellow        Color = "yellow"
	ColorOrange        Color = "orange"
	ColorRed           Color = "red"
	ColorPurple        Color = "purple"
	ColorMagenta       Color = "magenta"
	ColorGreen         Color = "green"
	ColorTeal          Color = "teal"
	ColorBlue          Color = "blue"
)

// OrderBy — порядок сортировки списков фотографий.
type OrderBy string

const (
	OrderByLatest  OrderBy = "latest"
	OrderByOldest  OrderBy = "oldest"
	OrderByPopular OrderBy = "popular"
)

// SearchOrderBy — порядок сортировки результатов поиска.
type SearchOrderBy string

const (
	SearchOrderByLatest   SearchOrderBy = "latest"
	SearchOrderByRelevant SearchOrderBy = "relevant"
)

// TopicOrderBy — порядок сортировки тем.
type TopicOrderBy string

const (
	TopicOrderByFeatured TopicOrderBy = "featured"
	TopicOrderByLatest   TopicOrderBy = "latest"
	TopicOrderByOldest   TopicOrderBy = "oldest"
	TopicOrderByPosition TopicOrderBy = "position"
)

// Resolution — шаг исторической статистики.
type Resolution string

const (
	ResolutionDays   Resolution = "days"
	ResolutionMonths Resolution = "months"
	ResolutionYears  Resolution = "years"
)

// Size — именованный размер изображения в Photo.URLs.
type Size string

const (
	SizeRaw     Size = "raw"
	SizeFull    Size = "full"
	SizeRegular Size = "regular"
	SizeSmall   Size = "small"
	SizeThumb   Size = "thumb"
)

// MaxRandomCount — наибольшее количество фотографий в одном запросе photos/random.
const MaxRandomCount = 30
