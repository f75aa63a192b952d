package domain

type SubnetRegistry interface {
	LoadAll() []SubnetRecord
	GetAll() []SubnetRecord
	Add(rec SubnetRecord) bool
	Update(rec SubnetRecord) bool
	Delete(ids ...int) bool
	FindContaining(ip string) (SubnetRecord, error)
}

type SiteRegistry interface {
	LoadAll() []SiteRecord
	GetAll() []SiteRecord
	Add(rec SiteRecord) bool
	Delete(ids ...int) bool
}
