package models

// Fields maps form field names to submitted text. A missing key and an empty
// value are equivalent: both render as the printed-form placeholder.
type Fields map[string]string

func (f Fields) Get(name string) string { return f[name] }

// Photos maps photo slot names to uploaded image bytes. A nil/absent entry
// renders as the "(no image)" caption.
type Photos map[string][]byte

func (p Photos) Get(name string) []byte { return p[name] }

// Submission is one request's worth of form data. It is built from a single
// multipart request and discarded once the document has been generated.
type Submission struct {
	Fields Fields
	Photos Photos
}

func NewSubmission() *Submission {
	return &Submission{Fields: Fields{}, Photos: Photos{}}
}

// FieldError describes one field that failed numeric validation.
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// TextFields is the declared form schema: every text field the tallysheet
// accepts, in paper-form order. Field names are the public form contract and
// stay in Indonesian to match the printed form.
var TextFields = []string{
	// 1. titik koordinat
	"latitude_derajat", "latitude_menit", "latitude_detik", "latitude_arah",
	"longitude_derajat", "longitude_menit", "longitude_detik", "longitude_arah",
	// 2. elevasi lahan
	"elevasi_lahan",
	// 3. kondisi air tanah, genangan dan banjir
	"kedalaman_air_tanah", "genangan",
	"banjir_bulan", "banjir_lama_hari", "banjir_ketinggian_air",
	"sumber_air_hujan", "sumber_air_limpasan_sungai", "sumber_air_kiriman_hulu",
	"sumber_air_lainnya_checkbox", "sumber_air_lainnya_text",
	// 4. tutupan lahan
	"jenis_tanaman", "status_masyarakat", "status_perusahaan",
	"nama_perusahaan", "luas_konsesi",
	// 5. flora dan fauna
	"flora_tidak_ada", "flora_ada", "flora_jenis",
	"fauna_tidak_ada", "fauna_ada", "fauna_jenis",
	// 6. drainase
	"drainase_alami_tidak_ada", "drainase_alami_ada",
	"drainase_buatan_tidak_ada", "drainase_buatan_ada",
	"drainase_buatan_saluran_terbuka", "drainase_buatan_saluran_terkontrol",
	"tinggi_muka_air_saluran",
	// 7. kualitas air
	"kualitas_air_tanah_ph", "kualitas_air_saluran_ph",
	"kualitas_air_tanah_ec", "kualitas_air_saluran_ec",
	"kualitas_air_tanah_tds", "kualitas_air_saluran_tds",
	// 8. substratum tanah liat
	"substratum_tanah_liat_ph", "substratum_tanah_liat_ec",
	// 9. tipe luapan
	"tipe_luapan_kemarau_a", "tipe_luapan_kemarau_b",
	"tipe_luapan_kemarau_c", "tipe_luapan_kemarau_d",
	"tipe_luapan_hujan_a", "tipe_luapan_hujan_b",
	"tipe_luapan_hujan_c", "tipe_luapan_hujan_d",
	// 10. ketebalan gambut
	"ketebalan_gambut_cm",
	"tingkat_perombakan_saprik", "tingkat_perombakan_hemik", "tingkat_perombakan_fibrik",
	// 11. substratum di bawah lapisan gambut
	"substratum_pasir_kwarsa", "substratum_clay_sedimen_sungai",
	"substratum_sedimen_berpirit", "substratum_granit",
	"substratum_lainnya_checkbox", "substratum_lainnya_text",
	// 12. perkembangan kerusakan
	"kerusakan_drainase_buatan", "kerusakan_terekspos_sedimen",
	"kondisi_tanaman_tidak_normal", "kondisi_tanaman_tidak_produktif",
	"kondisi_tanaman_miring_tumbang",
	"kondisi_tanaman_terjadi_subsiden_checkbox", "kondisi_tanaman_subsiden_cm",
	"kerapatan_tajuk",
	// 13. informasi kebakaran dan hujan
	"kebakaran_tahun", "kebakaran_bulan", "kebakaran_tanggal",
	"kebakaran_lama_kejadian_bulan",
	"pemadaman_swadaya_masyarakat", "pemadaman_bantuan_pemerintah",
	"hujan_tanggal", "hujan_bulan", "hujan_tahun", "hujan_lama_kejadian_jam",
	"intensitas_hujan_tinggi", "intensitas_hujan_sedang", "intensitas_hujan_rendah",
	// 14-16. hasil analisis laboratorium
	"porositas_bobot_isi", "kelengasan_kadar_air", "c_organik",
}

// PhotoFields is the declared upload schema: the site sketch plus every slot
// of the fixed photo gallery.
var PhotoFields = []string{
	"sketsa_lokasi_image",
	"foto_air_tanah_genangan_1", "foto_air_tanah_genangan_2",
	"foto_tutupan_lahan_1", "foto_tutupan_lahan_2",
	"foto_flora_fauna_1", "foto_flora_fauna_2",
	"foto_drainase_alami", "foto_drainase_buatan",
	"foto_kualitas_air_ec", "foto_kualitas_air_tds", "foto_kualitas_air_ph",
	"foto_tmat_1", "foto_tmat_2",
	"foto_ketebalan_gambut_1", "foto_ketebalan_gambut_2",
	"foto_substratum_ec", "foto_substratum_ph",
	"foto_kerusakan_lahan_gambut_1", "foto_kerusakan_lahan_gambut_2",
	"foto_karakteristik_tanah_pirit_1", "foto_karakteristik_tanah_pirit_2",
	"foto_porositas_kelengasan_1", "foto_porositas_kelengasan_2",
	"foto_tambahan_1", "foto_tambahan_2", "foto_tambahan_3", "foto_tambahan_4",
	"foto_tambahan_5", "foto_tambahan_6", "foto_tambahan_7", "foto_tambahan_8",
}
