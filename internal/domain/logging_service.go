package domain

import (
	"errors"
	"log/slog"
)

type loggingSubnetRegistry struct {
	logger *slog.Logger
	next   SubnetRegistry
}

func NewLoggingSubnetRegistry(logger *slog.Logger, next SubnetRegistry) SubnetRegistry {
	if logger == nil || next == nil {
		return next
	}

	return &loggingSubnetRegistry{
		logger: logger,
		next:   next,
	}
}

func (s *loggingSubnetRegistry) LoadAll() []SubnetRecord {
	records := s.next.LoadAll()
	s.logger.Info("subnet registry loaded", "count", len(records))
	return records
}

func (s *loggingSubnetRegistry) GetAll() []SubnetRecord {
	return s.next.GetAll()
}

func (s *loggingSubnetRegistry) Add(rec SubnetRecord) bool {
	ok := s.next.Add(rec)
	if !ok {
		s.logger.Debug("subnet rejected", "cidr", rec.CIDR)
		return false
	}

	s.logger.Info("subnet added", "cidr", rec.CIDR, "vlan_id", rec.VLANID)
	return true
}

func (s *loggingSubnetRegistry) Update(rec SubnetRecord) bool {
	ok := s.next.Update(rec)
	if !ok {
		s.logger.Debug("subnet update rejected", "id", rec.ID, "cidr", rec.CIDR)
		return false
	}

	s.logger.Info("subnet updated", "id", rec.ID, "cidr", rec.CIDR)
	return true
}

func (s *loggingSubnetRegistry) Delete(ids ...int) bool {
	ok := s.next.Delete(ids...)
	if !ok {
		s.logger.Debug("subnet delete matched nothing", "ids", ids)
		return false
	}

	s.logger.Info("subnets deleted", "ids", ids)
	return true
}

func (s *loggingSubnetRegistry) FindContaining(ip string) (SubnetRecord, error) {
	rec, err := s.next.FindContaining(ip)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			s.logger.Debug("lookup rejected", "ip", ip, "err", err.Error())
		}
		return SubnetRecord{}, err
	}

	s.logger.Debug("lookup matched", "ip", ip, "cidr", rec.CIDR)
	return rec, nil
}

type loggingSiteRegistry struct {
	logger *slog.Logger
	next   SiteRegistry
}

func NewLoggingSiteRegistry(logger *slog.Logger, next SiteRegistry) SiteRegistry {
	if logger == nil || next == nil {
		return next
	}

	return &loggingSiteRegistry{
		logger: logger,
		next:   next,
	}
}

func (s *loggingSiteRegistry) LoadAll() []SiteRecord {
	records := s.next.LoadAll()
	s.logger.Info("site registry loaded", "count", len(records))
	return records
}

func (s *loggingSiteRegistry) GetAll() []SiteRecord {
	return s.next.GetAll()
}

func (s *loggingSiteRegistry) Add(rec SiteRecord) bool {
	ok := s.next.Add(rec)
	if !ok {
		s.logger.Debug("site rejected", "name", rec.Name)
		return false
	}

	s.logger.Info("site added", "name", rec.Name)
	return true
}

func (s *loggingSiteRegistry) Delete(ids ...int) bool {
	ok := s.next.Delete(ids...)
	if !ok {
		s.logger.Debug("site delete matched nothing", "ids", ids)
		return false
	}

	s.logger.Info("sites deleted", "ids", ids)
	return true
}
