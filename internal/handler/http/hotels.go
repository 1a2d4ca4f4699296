package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/redproduct/hotelkeeper/internal/logger"
	"github.com/redproduct/hotelkeeper/internal/service"
	"github.com/redproduct/hotelkeeper/internal/utils"
	"github.com/redproduct/hotelkeeper/models"
)

// maxUploadSize caps the in-memory portion of a multipart hotel upload.
const maxUploadSize = 32 << 20

func (h *Handler) listHotels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hotels, err := h.services.HotelService.ListHotels(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.HotelsResponse{
		Status: "success",
		Data:   hotels,
	}, http.StatusOK)
}

func (h *Handler) getHotel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hotelID, err := idFromURL(r, "hotelID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	hotel, err := h.services.HotelService.GetHotel(ctx, hotelID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.HotelResponse{
		Status: "success",
		Data:   hotel,
	}, http.StatusOK)
}

// createHotel accepts either a plain JSON body or a multipart form carrying
// the same fields plus any number of image files under the "images" key.
// Uploaded images are written to local storage first; their public paths are
// stored on the hotel record.
func (h *Handler) createHotel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var hotel models.Hotel

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		parsed, err := h.hotelFromMultipart(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		hotel = parsed
	} else {
		if err := json.NewDecoder(r.Body).Decode(&hotel); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			writeError(w, r, service.ErrInvalidDataProvided)
			return
		}
	}

	createdHotel, err := h.services.HotelService.CreateHotel(ctx, hotel)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", createdHotel.HotelID).Str("name", createdHotel.Name).Msg("hotel created")

	utils.WriteJSON(w, models.HotelResponse{
		Status: "success",
		Data:   createdHotel,
	}, http.StatusCreated)
}

// hotelFromMultipart reads hotel fields and image files out of a multipart
// form. Field names mirror the JSON body; files travel under "images".
func (h *Handler) hotelFromMultipart(r *http.Request) (models.Hotel, error) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		return models.Hotel{}, service.ErrInvalidDataProvided
	}

	hotel := models.Hotel{
		Name:        r.FormValue("name"),
		Address:     r.FormValue("address"),
		Currency:    models.Currency(r.FormValue("devise")),
		ContactInfo: r.FormValue("contactInfo"),
		Status:      models.HotelStatus(r.FormValue("status")),
		Images:      models.ImageList{},
	}

	if priceValue := r.FormValue("price"); priceValue != "" {
		price, err := strconv.ParseFloat(priceValue, 64)
		if err != nil {
			log.Err(err).Str("price", priceValue).Msg("invalid price value")
			return models.Hotel{}, service.ErrInvalidDataProvided
		}
		hotel.Price = price
	}

	if r.MultipartForm == nil {
		return hotel, nil
	}

	for _, header := range r.MultipartForm.File["images"] {
		f, err := header.Open()
		if err != nil {
			log.Err(err).Str("file", header.Filename).Msg("error opening uploaded image")
			return models.Hotel{}, service.ErrInvalidDataProvided
		}

		imagePath, err := h.images.SaveImage(ctx, header.Filename, f)
		f.Close()
		if err != nil {
			log.Err(err).Str("file", header.Filename).Msg("error saving uploaded image")
			return models.Hotel{}, err
		}

		hotel.Images = append(hotel.Images, imagePath)
	}

	return hotel, nil
}

func (h *Handler) updateHotel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	hotelID, err := idFromURL(r, "hotelID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.HotelUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	hotel, err := h.services.HotelService.UpdateHotel(ctx, hotelID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", hotel.HotelID).Msg("hotel updated")

	utils.WriteJSON(w, models.HotelResponse{
		Status: "success",
		Data:   hotel,
	}, http.StatusOK)
}

func (h *Handler) deleteHotel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	hotelID, err := idFromURL(r, "hotelID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.HotelService.DeleteHotel(ctx, hotelID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", hotelID).Msg("hotel deleted")

	utils.WriteJSON(w, models.Response{
		Status:  "success",
		Message: "hotel deleted",
	}, http.StatusOK)
}
