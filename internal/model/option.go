package model

// DownloadOption is one entry of the radio group on the main screen
type DownloadOption struct {
	Label    string
	URL      string
	FileName string
}

// Request builds the enqueue descriptor for this option
func (o DownloadOption) Request(title, description string) Request {
	return Request{
		URL:         o.URL,
		FileName:    o.FileName,
		Title:       title,
		Description: description,
	}
}

// DefaultOptions returns the built-in catalog
func DefaultOptions() []DownloadOption {
	return []DownloadOption{
		{
			Label:    "Glide - Image Loading Library by BumpTech",
			URL:      "https://github.com/bumptech/glide/archive/master.zip",
			FileName: "glide-master.zip",
		},
		{
			Label:    "LoadApp - Current repository by Udacity",
			URL:      "https://github.com/udacity/nd940-c3-advanced-android-programming-project-starter/archive/master.zip",
			FileName: "loadapp-master.zip",
		},
		{
			Label:    "Retrofit - Type-safe HTTP client for Android and Java by Square, Inc",
			URL:      "https://github.com/square/retrofit/archive/master.zip",
			FileName: "retrofit-master.zip",
		},
	}
}
