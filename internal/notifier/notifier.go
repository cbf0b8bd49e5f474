// Package notifier mengirim notifikasi sebagai efek samping transisi status.
// Pengiriman bersifat fire-and-forget: kegagalan di sini TIDAK boleh
// membatalkan transisi yang sudah terjadi.
package notifier

import (
	"log"

	"worktrack-backend/internal/model"

	"gorm.io/gorm"
)

type Message struct {
	UserID      uint // Penerima
	Type        string
	Title       string
	Body        string
	Link        string
	RelatedType string
	RelatedID   uint
}

type Notifier interface {
	Notify(msg Message) error
}

// Service menulis baris Notification ke database, lalu (kalau SMTP
// dikonfigurasi) mengirim email di background.
type Service struct {
	db     *gorm.DB
	mailer *Mailer // nil = email dimatikan
}

func New(db *gorm.DB, mailer *Mailer) *Service {
	return &Service{db: db, mailer: mailer}
}

func (s *Service) Notify(msg Message) error {
	notif := model.Notification{
		UserID:      msg.UserID,
		Type:        msg.Type,
		Title:       msg.Title,
		Message:     msg.Body,
		Link:        msg.Link,
		RelatedType: msg.RelatedType,
		RelatedID:   msg.RelatedID,
	}
	if err := s.db.Create(&notif).Error; err != nil {
		return err
	}

	if s.mailer != nil {
		go s.sendEmail(msg) // Jalankan di background agar respon cepat
	}
	return nil
}

func (s *Service) sendEmail(msg Message) {
	var user model.User
	if err := s.db.First(&user, msg.UserID).Error; err != nil {
		return
	}
	if user.Email == "" {
		return
	}
	if err := s.mailer.Send(user.Email, msg.Title, msg.Body); err != nil {
		log.Println("Gagal kirim email notifikasi:", err)
	}
}
