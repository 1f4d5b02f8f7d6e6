package model

import "time"

type Product struct {
	ID        string    `firestore:"-" bson:"_id"`
	Nama      string    `firestore:"nama" bson:"nama"`
	Harga     float64   `firestore:"harga" bson:"harga"`
	Gambar    string    `firestore:"gambar" bson:"gambar"`
	Kategori  string    `firestore:"kategori" bson:"kategori"`
	Deskripsi string    `firestore:"deskripsi" bson:"deskripsi"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" bson:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp" bson:"updatedAt"`
}
