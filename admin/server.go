package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"warlands/config"
	"warlands/models"
)

// Server is the read-only inspection API. Mutations go through the TCP
// operation surface; this side never writes.
type Server struct {
	db *gorm.DB
}

func StartServer(db *gorm.DB) {
	port := os.Getenv("ADMIN_PORT")
	if port == "" {
		return
	}
	s := &Server{db: db}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.healthHandler).Methods("GET")
	r.HandleFunc("/owners", s.listOwnersHandler).Methods("GET")
	r.HandleFunc("/owners/{address}", s.getOwnerHandler).Methods("GET")
	r.HandleFunc("/support", s.listSupportHandler).Methods("GET")
	r.HandleFunc("/support/{address}", s.getSupportHandler).Methods("GET")
	r.HandleFunc("/missions", s.listMissionsHandler).Methods("GET")
	r.HandleFunc("/missions/{name}", s.getMissionHandler).Methods("GET")
	r.HandleFunc("/missions/{name}/contributions", s.listContributionsHandler).Methods("GET")
	r.HandleFunc("/missions/{name}/payouts", s.listPayoutsHandler).Methods("GET")

	log.Printf("Admin API is running on port %s...\n", port)
	go func() {
		if err := http.ListenAndServe(":"+port, r); err != nil {
			log.Printf("Admin API stopped: %v", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"db_stats": config.GetDBStats(),
	})
}

func (s *Server) listOwnersHandler(w http.ResponseWriter, r *http.Request) {
	var owners []models.Owner
	if err := s.db.Preload("Lands").Find(&owners).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, owners)
}

func (s *Server) getOwnerHandler(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	var owner models.Owner
	err := s.db.Preload("Lands").First(&owner, "address = ?", address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, "owner not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, owner)
}

func (s *Server) listSupportHandler(w http.ResponseWriter, r *http.Request) {
	var records []models.SupportRecord
	if err := s.db.Find(&records).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, records)
}

type supportDetail struct {
	Record     models.SupportRecord `json:"record"`
	Supporters []models.Supporter   `json:"supporters"`
}

func (s *Server) getSupportHandler(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	var record models.SupportRecord
	err := s.db.First(&record, "owner_address = ?", address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, "support record not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	var supporters []models.Supporter
	if err := s.db.Where("owner_address = ?", address).
		Order("position asc").Find(&supporters).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, supportDetail{Record: record, Supporters: supporters})
}

func (s *Server) listMissionsHandler(w http.ResponseWriter, r *http.Request) {
	var missions []models.Mission
	if err := s.db.Find(&missions).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, missions)
}

func (s *Server) getMissionHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var mission models.Mission
	err := s.db.First(&mission, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, "mission not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, mission)
}

func (s *Server) listContributionsHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var contributions []models.Contribution
	if err := s.db.Where("mission_name = ?", name).Find(&contributions).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, contributions)
}

func (s *Server) listPayoutsHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var payouts []models.Payout
	if err := s.db.Where("mission_name = ?", name).Find(&payouts).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, payouts)
}
