package directory

// Placement is a company/site/team triple that is known to resolve together.
type Placement struct {
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	SiteID      string `json:"siteId"`
	SiteName    string `json:"siteName"`
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
}

type TeamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SiteResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CheckoutPolicy string         `json:"checkoutPolicy"`
	DayStartHour   int            `json:"dayStartHour"`
	Teams          []TeamResponse `json:"teams"`
}

type CompanyDirectoryResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Code  string         `json:"code"`
	Sites []SiteResponse `json:"sites"`
}
