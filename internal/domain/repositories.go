package domain

type SubnetStore interface {
	Load() ([]SubnetRecord, error)
	Save(records []SubnetRecord) error
}

type SiteStore interface {
	Load() ([]SiteRecord, error)
	Save(records []SiteRecord) error
}
