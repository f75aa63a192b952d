package http

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/MoeSaid22/subnet-registry/internal/csv"
	"github.com/MoeSaid22/subnet-registry/internal/domain"
)

// maxImportBytes caps CSV uploads at 50 MB.
const maxImportBytes = 50 << 20

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "store unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.Health.Ping(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "store ping failed", "err", err.Error())
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary List subnets
// @Tags subnets
// @Produce json
// @Success 200 {array} SubnetResponse
// @Router /api/v1/subnets [get]
func (a *API) handleGetAllSubnets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	err := encode(w, r, http.StatusOK, subnetsToResponse(a.Subnets.GetAll()))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client with subnet list", "err", err.Error())
	}
}

// @Summary Create subnet
// @Tags subnets
// @Accept json
// @Produce json
// @Param subnet body CreateSubnetRequest true "Subnet payload"
// @Success 201 {object} SubnetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/subnets [post]
func (a *API) handleCreateSubnet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	subnetReq, err := decode[CreateSubnetRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling subnet from request", "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	rec, err := subnetReq.toRecord()
	if err != nil {
		a.Logger.DebugContext(ctx, "rejecting subnet payload", "err", err.Error(), "cidr", subnetReq.CIDR)
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid subnet payload"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	if !a.Subnets.Add(rec) {
		a.Logger.DebugContext(ctx, "subnet rejected by registry", "cidr", rec.CIDR)
		err = encode(w, r, http.StatusConflict, ErrorResponse{Error: "subnet already exists"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	// The registry assigns the id, so read the stored record back.
	created := rec
	for _, existing := range a.Subnets.GetAll() {
		if existing.CIDR == rec.CIDR {
			created = existing
			break
		}
	}

	err = encode(w, r, http.StatusCreated, subnetToResponse(created))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Update subnet
// @Tags subnets
// @Accept json
// @Produce json
// @Param id path int true "Subnet ID"
// @Param subnet body UpdateSubnetRequest true "Subnet payload"
// @Success 200 {object} SubnetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/subnets/{id} [put]
func (a *API) handleUpdateSubnet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathInt(r, "id")
	if err != nil {
		a.Logger.ErrorContext(ctx, "unable to convert string id to int", "strID", r.PathValue("id"), "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	subnetReq, err := decode[UpdateSubnetRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling subnet from request", "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	rec, err := subnetReq.toRecord()
	if err != nil {
		a.Logger.DebugContext(ctx, "rejecting subnet payload", "err", err.Error(), "cidr", subnetReq.CIDR)
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid subnet payload"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}
	rec.ID = id

	exists := false
	for _, existing := range a.Subnets.GetAll() {
		if existing.ID == id {
			exists = true
			break
		}
	}
	if !exists {
		a.Logger.DebugContext(ctx, "subnet id not found", "id", id)
		err = encode(w, r, http.StatusNotFound, ErrorResponse{Error: "subnet not found"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	// Payload and id are valid at this point, so a refusal means the
	// cidr belongs to another record.
	if !a.Subnets.Update(rec) {
		a.Logger.DebugContext(ctx, "subnet update rejected by registry", "id", id, "cidr", rec.CIDR)
		err = encode(w, r, http.StatusConflict, ErrorResponse{Error: "cidr already in use"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	err = encode(w, r, http.StatusOK, subnetToResponse(rec))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Delete subnet
// @Tags subnets
// @Param id path int true "Subnet ID of the subnet to delete."
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/subnets/{id} [delete]
func (a *API) handleDeleteSubnetByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathInt(r, "id")
	if err != nil {
		a.Logger.ErrorContext(ctx, "unable to convert string id to int", "strID", r.PathValue("id"), "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	if !a.Subnets.Delete(id) {
		a.Logger.DebugContext(ctx, "subnet id not found", "id", id)
		err = encode(w, r, http.StatusNotFound, ErrorResponse{Error: "subnet not found"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete subnets by id list
// @Tags subnets
// @Param ids query string true "Comma separated subnet ids, e.g. 1,2,3"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/subnets [delete]
func (a *API) handleDeleteSubnets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw := r.URL.Query().Get("ids")
	if raw == "" {
		err := encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "missing ids parameter"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	ids, err := parseIDList(raw)
	if err != nil {
		a.Logger.DebugContext(ctx, "rejecting ids parameter", "ids", raw, "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	if !a.Subnets.Delete(ids...) {
		a.Logger.DebugContext(ctx, "no subnets matched ids", "ids", raw)
		err = encode(w, r, http.StatusNotFound, ErrorResponse{Error: "no matching subnets"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Find the subnet containing an address
// @Tags subnets
// @Produce json
// @Param ip query string true "IPv4 address, e.g. 10.18.4.9"
// @Success 200 {object} LookupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/subnets/lookup [get]
func (a *API) handleLookupIP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ip := r.URL.Query().Get("ip")

	rec, err := a.Subnets.FindContaining(ip)
	if err != nil {
		status := http.StatusInternalServerError
		resp := ErrorResponse{Error: "internal server error"}
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			a.Logger.DebugContext(ctx, "rejecting lookup ip", "ip", ip)
			status = http.StatusBadRequest
			resp = ErrorResponse{Error: "invalid ip"}
		case errors.Is(err, domain.ErrNotFound):
			a.Logger.DebugContext(ctx, "no subnet contains ip", "ip", ip)
			status = http.StatusNotFound
			resp = ErrorResponse{Error: "no subnet contains this ip"}
		default:
			a.Logger.ErrorContext(ctx, "uncaught error during lookup", "ip", ip, "err", err.Error())
		}
		err = encode(w, r, status, resp)
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	resp, err := lookupToResponse(ip, rec)
	if err != nil {
		a.Logger.ErrorContext(ctx, "deriving range for stored subnet", "cidr", rec.CIDR, "err", err.Error())
		err = encode(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	err = encode(w, r, http.StatusOK, resp)
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary List overlapping subnet pairs
// @Tags subnets
// @Produce json
// @Success 200 {array} OverlapResponse
// @Router /api/v1/subnets/overlaps [get]
func (a *API) handleGetOverlaps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pairs := domain.FindOverlaps(a.Subnets.GetAll())
	err := encode(w, r, http.StatusOK, overlapsToResponse(pairs))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client with overlap report", "err", err.Error())
	}
}

// @Summary Import subnets from a CSV document
// @Tags subnets
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV with IP_Subnet, VLAN_ID, VLAN_Name and Site_Name columns"
// @Success 200 {object} ImportReportResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/subnets/import [post]
func (a *API) handleImportSubnets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	defer r.Body.Close()

	body, errResp := a.importBody(r)
	if errResp != nil {
		err := encode(w, r, http.StatusBadRequest, *errResp)
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	rows, err := csv.ParseSubnetRows(body)
	if err != nil {
		msg := "invalid csv document"
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			msg = "csv exceeds the 50 MB limit"
		}
		a.Logger.ErrorContext(ctx, "parsing csv upload", "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: msg})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	report := a.Importer.ImportRows(rows)
	err = encode(w, r, http.StatusOK, reportToResponse(report))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client with import report", "err", err.Error())
	}
}

// importBody picks the CSV source out of the request: a multipart
// upload named file, or the raw body when the client sends text/csv.
func (a *API) importBody(r *http.Request) (io.Reader, *ErrorResponse) {
	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		file, header, err := r.FormFile("file")
		if err != nil {
			a.Logger.DebugContext(r.Context(), "missing file field in upload", "err", err.Error())
			return nil, &ErrorResponse{Error: "missing file field"}
		}
		if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
			a.Logger.DebugContext(r.Context(), "rejecting upload filename", "filename", header.Filename)
			return nil, &ErrorResponse{Error: "only .csv files are accepted"}
		}
		return file, nil
	case strings.HasPrefix(ct, "text/csv"):
		return r.Body, nil
	default:
		a.Logger.DebugContext(r.Context(), "rejecting upload content type", "content_type", ct)
		return nil, &ErrorResponse{Error: "unsupported content type"}
	}
}

// @Summary Export subnets as a CSV document
// @Tags subnets
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Router /api/v1/subnets/export [get]
func (a *API) handleExportSubnets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	records := a.Subnets.GetAll()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="subnets.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := csv.WriteSubnetRows(w, records); err != nil {
		a.Logger.ErrorContext(ctx, "writing csv export", "err", err.Error())
	}
}

// @Summary List sites
// @Tags sites
// @Produce json
// @Success 200 {array} SiteResponse
// @Router /api/v1/sites [get]
func (a *API) handleGetAllSites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	err := encode(w, r, http.StatusOK, sitesToResponse(a.Sites.GetAll()))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client with site list", "err", err.Error())
	}
}

// @Summary Create site
// @Tags sites
// @Accept json
// @Produce json
// @Param site body CreateSiteRequest true "Site payload"
// @Success 201 {object} SiteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/sites [post]
func (a *API) handleCreateSite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	siteReq, err := decode[CreateSiteRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling site from request", "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	rec, err := siteReq.toRecord()
	if err != nil {
		a.Logger.DebugContext(ctx, "rejecting site payload", "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "invalid site payload"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	if !a.Sites.Add(rec) {
		a.Logger.DebugContext(ctx, "site rejected by registry", "name", rec.Name)
		err = encode(w, r, http.StatusConflict, ErrorResponse{Error: "site already exists"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	created := rec
	for _, existing := range a.Sites.GetAll() {
		if strings.EqualFold(existing.Name, rec.Name) {
			created = existing
			break
		}
	}

	err = encode(w, r, http.StatusCreated, siteToResponse(created))
	if err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Delete site
// @Tags sites
// @Param id path int true "Site ID of the site to delete."
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sites/{id} [delete]
func (a *API) handleDeleteSiteByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathInt(r, "id")
	if err != nil {
		a.Logger.ErrorContext(ctx, "unable to convert string id to int", "strID", r.PathValue("id"), "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	if !a.Sites.Delete(id) {
		a.Logger.DebugContext(ctx, "site id not found", "id", id)
		err = encode(w, r, http.StatusNotFound, ErrorResponse{Error: "site not found"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete sites by id list
// @Tags sites
// @Param ids query string true "Comma separated site ids, e.g. 1,2,3"
// @Success 204 "No content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sites [delete]
func (a *API) handleDeleteSites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw := r.URL.Query().Get("ids")
	if raw == "" {
		err := encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "missing ids parameter"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	ids, err := parseIDList(raw)
	if err != nil {
		a.Logger.DebugContext(ctx, "rejecting ids parameter", "ids", raw, "err", err.Error())
		err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	if !a.Sites.Delete(ids...) {
		a.Logger.DebugContext(ctx, "no sites matched ids", "ids", raw)
		err = encode(w, r, http.StatusNotFound, ErrorResponse{Error: "no matching sites"})
		if err != nil {
			a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
