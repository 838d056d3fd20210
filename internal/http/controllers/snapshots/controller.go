// Package snapshots contiene los controllers de capturas de cámara.
package snapshots

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	dto "github.com/storesight/storesight/internal/http/dto/snapshots"
	httperrors "github.com/storesight/storesight/internal/http/errors"
	"github.com/storesight/storesight/internal/http/helpers"
	svc "github.com/storesight/storesight/internal/http/services/snapshots"
	"github.com/storesight/storesight/internal/observability/logger"
)

// errMalformedCameras indica que el parámetro cameras no se pudo parsear.
var errMalformedCameras = errors.New("malformed cameras parameter")

// parseCameraIDs acepta el parámetro cameras como array JSON (`["a","b"]`
// o `[1,2]`, los ids numéricos valen igual) o como lista separada por
// comas (`a,b`). JSON que no parsea es un error explícito, no un nil
// silencioso.
func parseCameraIDs(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "[") {
		var elems []any
		if err := json.Unmarshal([]byte(raw), &elems); err != nil {
			return nil, errMalformedCameras
		}
		ids := make([]string, 0, len(elems))
		for _, e := range elems {
			switch v := e.(type) {
			case string:
				ids = append(ids, v)
			case float64:
				ids = append(ids, strconv.FormatFloat(v, 'f', -1, 64))
			default:
				return nil, errMalformedCameras
			}
		}
		return ids, nil
	}
	return strings.Split(raw, ","), nil
}

// Controller maneja los endpoints de snapshots.
type Controller struct {
	service svc.Service
}

// New crea el controller de snapshots.
func New(service svc.Service) *Controller {
	return &Controller{service: service}
}

// Fetch maneja GET /snapshots/fetch?cameras=[...]&limit=N
func (c *Controller) Fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	ids, err := parseCameraIDs(q.Get("cameras"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := c.service.List(ctx, dto.FetchRequest{
		CameraIDs: ids,
		Limit:     limit,
	})
	if err != nil {
		logger.From(ctx).Debug("snapshot list failed",
			logger.Layer("controller"), logger.Op("Snapshots.Fetch"), logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

// Latest maneja GET /snapshots/latest/fetch?cameras=[...]
func (c *Controller) Latest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ids, err := parseCameraIDs(r.URL.Query().Get("cameras"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := c.service.Latest(ctx, dto.LatestRequest{
		CameraIDs: ids,
	})
	if err != nil {
		logger.From(ctx).Debug("latest snapshots failed",
			logger.Layer("controller"), logger.Op("Snapshots.Latest"), logger.Err(err))
		writeError(w, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, result)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errMalformedCameras):
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithMessage("el parámetro cameras está malformado"))
	case errors.Is(err, svc.ErrMissingFields):
		httperrors.WriteError(w, httperrors.ErrMissingFields.WithMessage("camera_ids es obligatorio"))
	default:
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
	}
}
