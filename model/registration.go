package model

import "time"

const (
	StatusPending  = "Menunggu Verifikasi"
	StatusAccepted = "Diterima"
	StatusRejected = "Ditolak"
)

// Statuses lists every registration status in review order.
var Statuses = []string{StatusPending, StatusAccepted, StatusRejected}

// Registration is an applicant submission in the "registrations" collection.
// The Dokumen fields hold uploaded file names only.
type Registration struct {
	ID            string    `firestore:"-" bson:"_id"`
	Nama          string    `firestore:"nama" bson:"nama"`
	NISN          string    `firestore:"nisn" bson:"nisn"`
	Email         string    `firestore:"email" bson:"email"`
	Alamat        string    `firestore:"alamat" bson:"alamat"`
	AsalSekolah   string    `firestore:"asalSekolah" bson:"asalSekolah"`
	DokumenKK     string    `firestore:"dokumenKK" bson:"dokumenKK"`
	DokumenIjazah string    `firestore:"dokumenIjazah" bson:"dokumenIjazah"`
	DokumenSKHUN  string    `firestore:"dokumenSKHUN" bson:"dokumenSKHUN"`
	DokumenFoto   string    `firestore:"dokumenFoto" bson:"dokumenFoto"`
	Status        string    `firestore:"status" bson:"status"`
	CreatedAt     time.Time `firestore:"createdAt,serverTimestamp" bson:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt,serverTimestamp" bson:"updatedAt"`
}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}
