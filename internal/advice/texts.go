package advice

import (
	"glowyze-backend/internal/i18n"
	"glowyze-backend/internal/recommendations"
)

var (
	titleText        = i18n.Text{EN: "Ingredient Advice", ID: "Saran Kandungan"}
	subtitleText     = i18n.Text{EN: "Personalized based on your latest scan results.", ID: "Dipersonalisasi berdasarkan hasil scan terakhir Anda."}
	focusLabelText   = i18n.Text{EN: "Treatment Focus", ID: "Fokus Perawatan"}
	currentFocusText = i18n.Text{EN: "Based on Current Condition", ID: "Berdasarkan Kondisi Terkini"}
	concernLabelText = i18n.Text{EN: "Primary Concern: ", ID: "Masalah Utama: "}
	badgeText        = i18n.Text{EN: "HIGHLY RECOMMENDED", ID: "SANGAT DISARANKAN"}
	emptyText        = i18n.Text{EN: "Perform a face scan for accurate recommendations.", ID: "Lakukan scan wajah untuk rekomendasi yang lebih akurat."}
	disclaimerText   = i18n.Text{
		EN: "Disclaimer: This is not medical advice. Always patch test new products. Consult a dermatologist for severe skin conditions.",
		ID: "Penting: Informasi ini bukan saran medis. Selalu lakukan patch test sebelum mencoba produk baru. Konsultasikan dengan dermatologis untuk masalah kulit serius.",
	}
)

var metricNames = map[recommendations.Metric]i18n.Text{
	recommendations.MetricAcne:         {EN: "Acne", ID: "Jerawat"},
	recommendations.MetricWrinkles:     {EN: "Wrinkles", ID: "Kerutan"},
	recommendations.MetricPigmentation: {EN: "Pigmentation", ID: "Pigmentasi"},
	recommendations.MetricTexture:      {EN: "Texture", ID: "Tekstur"},
}
