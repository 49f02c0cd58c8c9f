package tallysheet

import "github.com/gambutlab/tallysheet/internal/models"

// SampleSubmission returns a submission filled with fixed example values so
// the generated layout can be inspected without a real survey. Photo slots
// stay empty and render as placeholders.
func SampleSubmission() *models.Submission {
	sub := models.NewSubmission()
	sub.Fields = models.Fields{
		"latitude_derajat":  "1",
		"latitude_menit":    "23",
		"latitude_detik":    "45",
		"latitude_arah":     "LS",
		"longitude_derajat": "102",
		"longitude_menit":   "10",
		"longitude_detik":   "12",
		"longitude_arah":    "BT",

		"elevasi_lahan": "12",

		"kedalaman_air_tanah":     "45",
		"genangan":                "10",
		"banjir_bulan":            "Januari",
		"banjir_lama_hari":        "5",
		"banjir_ketinggian_air":   "20",
		"sumber_air_hujan":        "on",
		"sumber_air_kiriman_hulu": "on",
		"sumber_air_lainnya_text": "drainase tersumbat",

		"jenis_tanaman":     "Kelapa",
		"status_masyarakat": "on",

		"flora_ada":   "on",
		"flora_jenis": "Rafflesia",
		"fauna_ada":   "on",
		"fauna_jenis": "Orangutan",

		"drainase_alami_ada":              "on",
		"drainase_buatan_ada":             "on",
		"drainase_buatan_saluran_terbuka": "on",
		"tinggi_muka_air_saluran":         "30",

		"kualitas_air_tanah_ph":    "4.2",
		"kualitas_air_saluran_ph":  "5.6",
		"kualitas_air_tanah_ec":    "120",
		"kualitas_air_saluran_ec":  "200",
		"kualitas_air_tanah_tds":   "50",
		"kualitas_air_saluran_tds": "80",

		"substratum_tanah_liat_ph": "6.6",
		"substratum_tanah_liat_ec": "300",

		"tipe_luapan_kemarau_a": "on",
		"tipe_luapan_hujan_b":   "on",

		"ketebalan_gambut_cm":       "120",
		"tingkat_perombakan_saprik": "on",

		"substratum_pasir_kwarsa": "on",

		"kerusakan_drainase_buatan":    "on",
		"kondisi_tanaman_tidak_normal": "on",
		"kerapatan_tajuk":              "3",

		"kebakaran_tahun":               "2023",
		"kebakaran_bulan":               "Agustus",
		"kebakaran_tanggal":             "15",
		"kebakaran_lama_kejadian_bulan": "1",
		"pemadaman_swadaya_masyarakat":  "on",
		"hujan_tanggal":                 "10",
		"hujan_bulan":                   "07",
		"hujan_tahun":                   "2024",
		"hujan_lama_kejadian_jam":       "6",
		"intensitas_hujan_tinggi":       "on",

		"porositas_bobot_isi":  "45",
		"kelengasan_kadar_air": "85",
		"c_organik":            "58",
	}
	return sub
}
