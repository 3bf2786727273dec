// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flashcard-quiz-bot/internal/domain/entities"
)

const (
	msgWelcome = "Assalamu'alaikum! 👋\n\n" +
		"Ini adalah kuis flashcard. Pilih topik, atur jumlah soal dan timer, " +
		"lalu jawab setiap kartu dengan jujur: lihat jawabannya, kemudian tandai Benar atau Salah."
	msgHelp = "📖 Cara bermain\n\n" +
		"1. Pilih topik kuis dari menu.\n" +
		"2. Atur jumlah soal dan timer, lalu tekan Mulai Kuis.\n" +
		"3. Tekan Lihat Jawaban, lalu nilai diri Anda dengan Benar atau Salah.\n" +
		"4. Lewati Dulu memindahkan kartu ke belakang antrean.\n\n" +
		"/menu kembali ke menu utama\n/help bantuan ini"
	msgInternalError  = "Terjadi kesalahan. Silakan coba lagi nanti."
	msgUnknownCommand = "Perintah tidak dikenal. Gunakan /menu atau /help."
	msgInvalidValue   = "Nilai tidak valid."
)

const (
	titleMenu        = "📚 Pilih Topik Kuis"
	subtitleMenu     = "Ketuk kartu untuk memulai kuis flashcard."
	titleSettings    = "⚙️ Pengaturan Kuis"
	titleTimeUp      = "⏰ Waktu Habis!"
	titleFinished    = "🏆 Sesi Selesai!"
	labelQuestions   = "Jumlah Soal"
	labelTimer       = "Timer"
	labelDuration    = "Durasi (menit)"
	labelAvailable   = "Tersedia"
	labelRemaining   = "Tersisa: %d Soal"
	labelQuestion    = "Pertanyaan"
	labelAnswer      = "Jawaban"
	labelTapToReveal = "Ketuk Lihat Jawaban untuk membalik kartu."
	labelScore       = "Skor Anda"
	labelOn          = "Aktif"
	labelOff         = "Nonaktif"
)

const (
	btnStart    = "▶️ Mulai Kuis"
	btnReveal   = "👁 Lihat Jawaban"
	btnSkip     = "⏭ Lewati Dulu"
	btnCorrect  = "✅ Benar"
	btnWrong    = "❌ Salah"
	btnRetry    = "🔄 Ulangi Kategori Ini"
	btnHome     = "🏠 Pilih Kategori Lain"
	btnBack     = "⬅️ Menu"
	btnTimerOn  = "⏱ Timer: Aktif"
	btnTimerOff = "⏱ Timer: Nonaktif"
)

var remarkText = map[entities.Remark]string{
	entities.RemarkPerfect:   "Sempurna! Masya Allah Tabarakallah.",
	entities.RemarkGreat:     "Hasil yang sangat bagus!",
	entities.RemarkKeepGoing: "Terus semangat belajar!",
}

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

func formatBool(v bool) string {
	if v {
		return labelOn
	}
	return labelOff
}

// buildProgressBar creates a text progress bar for a percentage.
func buildProgressBar(pct, length int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	filled := pct * length / 100
	return fmt.Sprintf("[%s%s]", strings.Repeat("█", filled), strings.Repeat("░", length-filled))
}
