package models

import "gorm.io/datatypes"

// Seed datasets used whenever a collection has never been written to durable
// storage, and when the remote backend returns no rows at startup.

func str(s string) *string { return &s }

// DefaultExperiences returns a fresh copy of the seed experience collection.
func DefaultExperiences() []Experience {
	return []Experience{
		{
			ID:          1,
			Title:       "Asisten Praktikum",
			Company:     "Program Studi Sistem Informasi – Telkom University Jakarta",
			Location:    "Jakarta, Indonesia",
			Period:      "Sep 2023 – Jan 2025",
			Type:        "Paruh Waktu",
			Description: "Mendampingi dosen dalam pelaksanaan praktikum lima mata kuliah: Sistem Enterprise, Algoritma dan Pemrograman, PBO, Pengembangan Web, dan MRP.",
			Achievements: datatypes.NewJSONSlice([]string{
				"Menyusun soal kuis dan rubrik penilaian",
				"Melakukan penilaian laporan praktikum",
				"Membimbing teknis langsung di kelas",
				"Membimbing teknis langsung di 5 mata kuliah selama 3 semester",
			}),
			Technologies: datatypes.NewJSONSlice([]string{"Python", "Java", "SAP", "Laravel", "PHP", "HTML", "Git", "VS Code"}),
			Color:        "bg-green-500",
		},
		{
			ID:          2,
			Title:       "Staf Humas – Content Planner",
			Company:     "Himpunan Mahasiswa Sistem Informasi – Telkom University Jakarta",
			Location:    "Jakarta, Indonesia",
			Period:      "Jan 2024 – Des 2024",
			Type:        "Organisasi",
			Description: "Menyusun dan menjadwalkan konten media sosial serta mendukung kegiatan internal organisasi.",
			Achievements: datatypes.NewJSONSlice([]string{
				"Membuat kalender konten media sosial",
				"Menjadi pengisi games/interaktif dalam acara himpunan",
				"Berkoordinasi dengan tim media dan desain",
			}),
			Technologies: datatypes.NewJSONSlice([]string{}),
			Color:        "bg-pink-500",
		},
		{
			ID:          3,
			Title:       "Pengawas TPS – Pemilu Presiden 2024",
			Company:     "Bawaslu Kota Tangerang Selatan",
			Location:    "Pamulang Barat",
			Period:      "Feb 2024",
			Type:        "Event",
			Description: "Bertugas mengawasi proses pemungutan dan penghitungan suara di TPS dalam Pemilu Presiden.",
			Achievements: datatypes.NewJSONSlice([]string{
				"Menjalankan tugas pengawasan penuh di hari H",
				"Membuat laporan hasil pemantauan TPS secara lengkap",
				"Menjaga netralitas dan ketertiban jalannya pemilu",
			}),
			Technologies: datatypes.NewJSONSlice([]string{}),
			Color:        "bg-orange-500",
		},
		{
			ID:          4,
			Title:       "Liaison Officer – PKKMB 2024",
			Company:     "Telkom University Jakarta",
			Location:    "Jakarta, Indonesia",
			Period:      "Sep 2024",
			Type:        "Event",
			Description: "Mendampingi mahasiswa baru selama kegiatan orientasi kampus.",
			Achievements: datatypes.NewJSONSlice([]string{
				"Menyampaikan informasi teknis dan jadwal kegiatan",
				"Menjadi penghubung antara panitia dan peserta",
				"Menjaga komunikasi serta suasana kondusif di kelompok",
			}),
			Technologies: datatypes.NewJSONSlice([]string{}),
			Color:        "bg-indigo-500",
		},
		{
			ID:          5,
			Title:       "Pengawas TPS – Pilkada Tangerang Selatan 2024",
			Company:     "Bawaslu Kota Tangerang Selatan",
			Location:    "Pamulang Barat",
			Period:      "Nov 2024",
			Type:        "Event",
			Description: "Ditugaskan sebagai PTPS dalam Pilkada Serentak 2024 di wilayah Kelurahan Pamulang Barat.",
			Achievements: datatypes.NewJSONSlice([]string{
				"Menjalankan tugas pengawasan penuh di hari H",
				"Membuat laporan hasil pemantauan TPS secara lengkap",
				"Menjaga netralitas dan ketertiban jalannya pemilu",
			}),
			Technologies: datatypes.NewJSONSlice([]string{}),
			Color:        "bg-red-500",
		},
		{
			ID:          6,
			Title:       "Ketua Departemen Riset & Teknologi",
			Company:     "Himpunan Mahasiswa Sistem Informasi – Telkom University Jakarta",
			Location:    "Jakarta, Indonesia",
			Period:      "Jan 2025 – Sekarang",
			Type:        "Organisasi",
			Description: "Memimpin departemen teknologi, merancang program kerja, dan mengelola pelaksanaan kegiatan berbasis pengembangan skill teknologi.",
			Achievements: datatypes.NewJSONSlice([]string{
				"Menginisiasi dan mengelola pembuatan website resmi himpunan",
				"Mengoordinasi anggota dalam pelaksanaan program tahunan",
			}),
			Technologies: datatypes.NewJSONSlice([]string{"Laravel", "PHP", "MySQL", "HTML/CSS"}),
			Color:        "bg-purple-500",
		},
		{
			ID:          7,
			Title:       "Anggota Tim – Pengabdian Masyarakat",
			Company:     "Program Studi Sistem Informasi – Telkom University Jakarta",
			Location:    "SMK Nagrak Boarding School, Purwakarta",
			Period:      "Mar 2025 – Jul 2025",
			Type:        "Proyek Sosial",
			Description: "Merancang dan membangun Sistem Informasi Manajemen Aset untuk sekolah mitra.",
			Achievements: datatypes.NewJSONSlice([]string{
				"Menganalisis kebutuhan sistem bersama pihak sekolah",
				"Membangun dan mengimplementasikan sistem informasi manajemen aset",
				"Memberikan pelatihan penggunaan sistem kepada staf",
			}),
			Technologies: datatypes.NewJSONSlice([]string{"Laravel", "PHP", "MySQL", "Bootstrap", "HTML/CSS"}),
			Color:        "bg-blue-500",
		},
	}
}

// DefaultCertificates returns a fresh copy of the seed certificate collection.
func DefaultCertificates() []Certificate {
	return []Certificate{
		{
			ID:          1,
			Title:       "IT Essentials",
			Issuer:      "Cisco Networking Academy (melalui CCNA SMK Telkom SPJ)",
			Date:        "6 Agustus 2020",
			Image:       datatypes.NewJSONType(&ImageRef{ID: "cert_it_essentials", Data: "/cert-it-essentials.jpg", Name: "IT Essentials Certificate"}),
			Description: "Sertifikat ini menandakan keberhasilan dalam menyelesaikan kursus IT Essentials yang mencakup kemampuan dalam memilih dan menginstal komponen komputer, melakukan prosedur lab yang aman, menggunakan alat untuk pemeliharaan preventif dan pemecahan masalah, melakukan perbaikan dan pemeliharaan OS Windows, menjelaskan operasi jaringan area lokal dan konfigurasi perangkat untuk LAN dan Internet.",
			Skills:      datatypes.NewJSONSlice([]string{"Komponen Komputer", "Pemeliharaan Komputer", "Pemecahan Masalah Komputer", "Sistem Operasi (Windows, OS X, Linux)", "Jaringan (LAN, Internet)", "Perangkat Jaringan", "Konfigurasi Perangkat", "Keamanan Jaringan", "Pemasangan Printer"}),
		},
		{
			ID:           2,
			Title:        "Sertifikat Kompetensi (Membangun Jaringan WAN dengan Kabel dan Nirkabel dengan Routing RIP pada Simulasi Paket Tracer)",
			Issuer:       "SMK Telkom Sandhy Putra Jakarta (Yayasan Pendidikan Telkom)",
			Date:         "17 Desember 2021",
			Image:        datatypes.NewJSONType(&ImageRef{ID: "cert_wan_routing_rip", Data: "/cert-wan-routing-rip.jpg", Name: "WAN Routing RIP Certificate"}),
			Description:  "Sertifikat ini diberikan setelah melaksanakan Uji Kualifikasi Kompetensi Level 5 dengan predikat \"Kompeten\" dalam materi \"Membangun Jaringan WAN dengan Kabel dan Nirkabel dengan Routing RIP pada Simulasi Paket Tracer\".",
			Skills:       datatypes.NewJSONSlice([]string{"Jaringan WAN", "Kabel dan Nirkabel", "Routing Information Protocol (RIP)", "Simulasi Packet Tracer", "Konfigurasi Router"}),
			CredentialID: str("No. 527 / KUR / SMK TEL / JKT / XII / 2021"),
		},
		{
			ID:           3,
			Title:        "Sertifikat Kompetensi (Design dan Konfigurasi Jaringan Routing Statis Router Pada Simulasi Jaringan Packet Tracer)",
			Issuer:       "SMK Telkom Sandhy Putra Jakarta (Yayasan Pendidikan Telkom)",
			Date:         "26 Juni 2020",
			Image:        datatypes.NewJSONType(&ImageRef{ID: "cert_routing_statis", Data: "/cert-routing-statis.jpg", Name: "Routing Statis Certificate"}),
			Description:  "Sertifikat ini diberikan setelah melaksanakan Uji Kualifikasi Kompetensi Level Dua dengan predikat \"Kompeten\" dalam materi \"Design dan Konfigurasi Jaringan Routing Statis Router Pada Simulasi Jaringan Packet Tracer\".",
			Skills:       datatypes.NewJSONSlice([]string{"Desain Jaringan", "Konfigurasi Router", "Routing Statis", "Simulasi Packet Tracer"}),
			CredentialID: str("No. 374 / KUR / SMK TEL / VI / 2020"),
		},
		{
			ID:           4,
			Title:        "Sertifikat Kompetensi Keahlian (Teknik Komputer dan Jaringan)",
			Issuer:       "SMK Telkom Sandhy Putra Jakarta (Yayasan Pendidikan Telkom)",
			Date:         "20 Juni 2022",
			Image:        datatypes.NewJSONType(&ImageRef{ID: "cert_tkj_keahlian", Data: "/cert-tkj-keahlian.jpg", Name: "TKJ Keahlian Certificate"}),
			Description:  "Sertifikat ini menyatakan kelulusan dalam Uji Kompetensi Keahlian Teknik Komputer dan Jaringan, Program Studi Teknik Komputer Informatika, Bidang Studi Keahlian Teknologi Informasi dan Komunikasi dengan total nilai 100 predikat \"Kompeten\" berdasarkan peraturan terkait Pedoman Penyelenggaraan Uji Kompetensi Keahlian.",
			Skills:       datatypes.NewJSONSlice([]string{"Teknik Komputer dan Jaringan", "Teknologi Informasi dan Komunikasi"}),
			CredentialID: str("Nomor : 480 / KUR / SMKBTELJKT / VI / 2022"),
		},
		{
			ID:           5,
			Title:        "Sertifikat Kompetensi (Merancang Dan Mengkonfigurasi Router Dengan Routing Dinamis Rip Versi 1 Pada Simulasi Packet Tracer)",
			Issuer:       "SMK Telkom Sandhy Putra Jakarta (Yayasan Pendidikan Telkom)",
			Date:         "18 Desember 2020",
			Image:        datatypes.NewJSONType(&ImageRef{ID: "cert_rip_v1", Data: "/cert-rip-v1.jpg", Name: "RIP v1 Certificate"}),
			Description:  "Sertifikat ini diberikan setelah melaksanakan Uji Kualifikasi Kompetensi Level Tiga dengan predikat \"Kompeten\" dalam materi \"Merancang Dan Mengkonfigurasi Router Dengan Routing Dinamis Rip Versi 1 Pada Simulasi Packet Tracer\".",
			Skills:       datatypes.NewJSONSlice([]string{"Desain Jaringan", "Konfigurasi Router", "Routing Dinamis (RIP v1)", "Simulasi Packet Tracer"}),
			CredentialID: str("No. 681 / KUR / SMK TEL / XII / 2020"),
		},
		{
			ID:           6,
			Title:        "Sertifikat Kompetensi (Merancang dan mengkonfigurasi jaringan dengan router melalui routing dinamis RIP versi 2 pada simulasi Packet Tracer 8.0.0)",
			Issuer:       "SMK Telkom Sandhy Putra Jakarta (Yayasan Pendidikan Telkom)",
			Date:         "25 Juni 2021",
			Image:        datatypes.NewJSONType(&ImageRef{ID: "cert_rip_v2", Data: "/cert-rip-v2.jpg", Name: "RIP v2 Certificate"}),
			Description:  "Sertifikat ini diberikan setelah melaksanakan Uji Kualifikasi Kompetensi Level 4 (empat) dengan predikat \"Kompeten\" dalam materi \"Merancang dan mengkonfigurasi jaringan dengan router melalui routing dinamis RIP versi 2 pada simulasi Packet Tracer 8.0.0\".",
			Skills:       datatypes.NewJSONSlice([]string{"Desain Jaringan", "Konfigurasi Router", "Routing Dinamis (RIP v2)", "Simulasi Packet Tracer 8.0.0"}),
			CredentialID: str("No. 342 / KUR / SMK TEL / VI / 2021"),
		},
		{
			ID:           7,
			Title:        "Sertifikat Kompetensi (Perakitan Personal Komputer dan Instalasi Operating Sistem Linux)",
			Issuer:       "SMK Telkom Sandhy Putra Jakarta (Yayasan Pendidikan Telkom)",
			Date:         "20 Desember 2019",
			Image:        datatypes.NewJSONType(&ImageRef{ID: "cert_perakitan_linux", Data: "/cert-perakitan-linux.jpg", Name: "Perakitan PC & Linux Certificate"}),
			Description:  "Sertifikat ini diberikan setelah melaksanakan Uji Kualifikasi Kompetensi Level Satu dengan predikat \"Kompeten\" dalam materi \"Perakitan Personal Komputer dan Instalasi Operating Sistem Linux\".",
			Skills:       datatypes.NewJSONSlice([]string{"Perakitan Komputer (PC)", "Instalasi Sistem Operasi (Linux)"}),
			CredentialID: str("No. 993 / KUR / SMK TEL / XII / 2019"),
		},
	}
}

// DefaultProjects returns a fresh copy of the seed project collection.
func DefaultProjects() []Project {
	return []Project{
		{
			ID:           1,
			Title:        "E-Commerce Dashboard",
			Category:     CategoryWebDev,
			Description:  "Modern admin dashboard for e-commerce management with real-time analytics, inventory tracking, and order management.",
			Images:       datatypes.NewJSONSlice([]ImageRef{}),
			Technologies: datatypes.NewJSONSlice([]string{"React.js", "Node.js", "MongoDB", "Chart.js"}),
			Links: datatypes.NewJSONType(ProjectLinks{
				Live:   str("https://ecommerce-dashboard-demo.com"),
				Github: str("https://github.com/raihanzaky/ecommerce-dashboard"),
			}),
			Featured: true,
			Year:     "2024",
		},
		{
			ID:           2,
			Title:        "Food Delivery Mobile App",
			Category:     CategoryUIUX,
			Description:  "Complete UI/UX design for a food delivery application with user research, wireframes, and interactive prototypes.",
			Images:       datatypes.NewJSONSlice([]ImageRef{}),
			Technologies: datatypes.NewJSONSlice([]string{"Figma", "Adobe XD", "Principle", "User Research"}),
			Links: datatypes.NewJSONType(ProjectLinks{
				Figma:  str("https://figma.com/food-delivery-app"),
				Report: str("https://drive.google.com/food-app-research"),
			}),
			Featured: true,
			Year:     "2024",
		},
	}
}
