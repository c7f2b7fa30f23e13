package seed

// Built-in word packs. Fronts are the foreign-language form, backs the
// Indonesian gloss. Level names are kept verbatim so provenance tags on
// imported cards stay stable across releases.
var packs = map[string][]Level{
	"english": {
		{Name: "Pemula (A1)", Words: []Pair{
			{Front: "Apple", Back: "Apel"},
			{Front: "Book", Back: "Buku"},
			{Front: "Cat", Back: "Kucing"},
			{Front: "Dog", Back: "Anjing"},
			{Front: "House", Back: "Rumah"},
			{Front: "Water", Back: "Air"},
			{Front: "Food", Back: "Makanan"},
			{Front: "To eat", Back: "Makan"},
			{Front: "To sleep", Back: "Tidur"},
			{Front: "Happy", Back: "Senang"},
			{Front: "Sad", Back: "Sedih"},
			{Front: "Big", Back: "Besar"},
			{Front: "Small", Back: "Kecil"},
			{Front: "Red", Back: "Merah"},
			{Front: "Blue", Back: "Biru"},
			{Front: "Friend", Back: "Teman"},
			{Front: "Family", Back: "Keluarga"},
			{Front: "School", Back: "Sekolah"},
			{Front: "Teacher", Back: "Guru"},
			{Front: "Student", Back: "Murid"},
			{Front: "Car", Back: "Mobil"},
			{Front: "Money", Back: "Uang"},
			{Front: "Time", Back: "Waktu"},
			{Front: "Day", Back: "Hari"},
			{Front: "Night", Back: "Malam"},
			{Front: "Table", Back: "Meja"},
			{Front: "Chair", Back: "Kursi"},
			{Front: "Door", Back: "Pintu"},
			{Front: "Window", Back: "Jendela"},
			{Front: "Tree", Back: "Pohon"},
			{Front: "Sun", Back: "Matahari"},
			{Front: "Moon", Back: "Bulan"},
			{Front: "Star", Back: "Bintang"},
		}},
		{Name: "Menengah (B1)", Words: []Pair{
			{Front: "Environment", Back: "Lingkungan"},
			{Front: "Decision", Back: "Keputusan"},
			{Front: "Usually", Back: "Biasanya"},
			{Front: "To improve", Back: "Meningkatkan"},
			{Front: "Government", Back: "Pemerintah"},
			{Front: "Experience", Back: "Pengalaman"},
			{Front: "To suggest", Back: "Menyarankan"},
			{Front: "Relationship", Back: "Hubungan"},
			{Front: "Opportunity", Back: "Kesempatan"},
			{Front: "Recently", Back: "Baru-baru ini"},
			{Front: "However", Back: "Akan tetapi"},
			{Front: "Although", Back: "Meskipun"},
			{Front: "Condition", Back: "Kondisi"},
			{Front: "Available", Back: "Tersedia"},
			{Front: "To develop", Back: "Mengembangkan"},
			{Front: "Behavior", Back: "Perilaku"},
			{Front: "Necessary", Back: "Perlu/Penting"},
			{Front: "Especially", Back: "Terutama"},
			{Front: "To achieve", Back: "Mencapai"},
			{Front: "Challenge", Back: "Tantangan"},
			{Front: "Knowledge", Back: "Pengetahuan"},
			{Front: "Purpose", Back: "Tujuan"},
			{Front: "Solution", Back: "Solusi"},
			{Front: "To mention", Back: "Menyebutkan"},
			{Front: "Common", Back: "Umum"},
			{Front: "Various", Back: "Beragam"},
			{Front: "Influence", Back: "Pengaruh"},
			{Front: "Particular", Back: "Khusus/Tertentu"},
			{Front: "To reduce", Back: "Mengurangi"},
			{Front: "Immediate", Back: "Segera"},
		}},
		{Name: "Mahir (C1)", Words: []Pair{
			{Front: "Inevitable", Back: "Tak terelakkan"},
			{Front: "To elaborate", Back: "Menjelaskan rinci"},
			{Front: "Ambiguous", Back: "Ambigu"},
			{Front: "To distinguish", Back: "Membedakan"},
			{Front: "Hypothesis", Back: "Hipotesis"},
			{Front: "Substantial", Back: "Substansial"},
			{Front: "Consequently", Back: "Akibatnya"},
			{Front: "Nevertheless", Back: "Namun demikian"},
			{Front: "To advocate", Back: "Menganjurkan"},
			{Front: "Reluctant", Back: "Enggan"},
			{Front: "Prevalent", Back: "Lazim"},
			{Front: "To scrutinize", Back: "Meneliti cermat"},
			{Front: "Ubiquitous", Back: "Ada dimana-mana"},
			{Front: "To mitigate", Back: "Mengurangi dampak"},
			{Front: "Discrepancy", Back: "Ketidaksesuaian"},
			{Front: "To fluctuate", Back: "Naik turun"},
			{Front: "Unprecedented", Back: "Belum pernah terjadi"},
			{Front: "To implement", Back: "Menerapkan"},
			{Front: "Comprehensive", Back: "Menyeluruh"},
			{Front: "Viable", Back: "Layak"},
			{Front: "To exacerbate", Back: "Memperburuk"},
			{Front: "Alleviate", Back: "Meringankan"},
			{Front: "Conundrum", Back: "Teka-teki sulit"},
			{Front: "Ephemeral", Back: "Sementara"},
			{Front: "Pragmatic", Back: "Pragmatis"},
			{Front: "Resilient", Back: "Tangguh"},
			{Front: "To articulate", Back: "Menyuarakan"},
			{Front: "Benevolent", Back: "Baik hati"},
			{Front: "Malevolent", Back: "Jahat"},
			{Front: "Candid", Back: "Jujur/Terus terang"},
		}},
	},
	"japanese": {
		{Name: "Pemula (N5)", Words: []Pair{
			{Front: "Watashi", Back: "Saya"},
			{Front: "Neko", Back: "Kucing"},
			{Front: "Inu", Back: "Anjing"},
			{Front: "Hon", Back: "Buku"},
			{Front: "Taberu", Back: "Makan"},
			{Front: "Nomu", Back: "Minum"},
			{Front: "Iku", Back: "Pergi"},
			{Front: "Kuru", Back: "Datang"},
			{Front: "Oishii", Back: "Enak"},
			{Front: "Kawaii", Back: "Lucu"},
			{Front: "Arigatou", Back: "Terima kasih"},
			{Front: "Sumimasen", Back: "Maaf"},
			{Front: "Sensei", Back: "Guru"},
			{Front: "Gakusei", Back: "Murid"},
			{Front: "Tomodachi", Back: "Teman"},
			{Front: "Mizu (水)", Back: "Air"},
			{Front: "Gohan", Back: "Nasi"},
			{Front: "Pan", Back: "Roti"},
			{Front: "Sakana", Back: "Ikan"},
			{Front: "Niku", Back: "Daging"},
			{Front: "Yasai", Back: "Sayuran"},
			{Front: "Kudamono", Back: "Buah"},
			{Front: "Tamago", Back: "Telur"},
			{Front: "Gyuunyuu", Back: "Susu"},
			{Front: "Koohii", Back: "Kopi"},
			{Front: "Ocha", Back: "Teh"},
			{Front: "Eki", Back: "Stasiun"},
			{Front: "Gakkou (学校)", Back: "Sekolah"},
			{Front: "Kaisha", Back: "Perusahaan"},
			{Front: "Ie (家)", Back: "Rumah"},
		}},
		{Name: "Menengah (N3)", Words: []Pair{
			{Front: "Shakai", Back: "Masyarakat"},
			{Front: "Keiken", Back: "Pengalaman"},
			{Front: "Setsumei", Back: "Penjelasan"},
			{Front: "Riyou", Back: "Penggunaan"},
			{Front: "Kankyou", Back: "Lingkungan"},
			{Front: "Kekka", Back: "Hasil"},
			{Front: "Kanojo (彼女)", Back: "Dia (Pr)/Pacar"},
			{Front: "Kare (彼)", Back: "Dia (Lk)/Pacar"},
			{Front: "Jouhou", Back: "Informasi"},
			{Front: "Mondai", Back: "Masalah"},
			{Front: "Kaiketsu (解決)", Back: "Penyelesaian"},
			{Front: "Shigoto", Back: "Pekerjaan"},
			{Front: "Katsudou", Back: "Aktivitas"},
			{Front: "Seikatsu", Back: "Kehidupan"},
			{Front: "Bunka", Back: "Budaya"},
			{Front: "Keizai", Back: "Ekonomi"},
			{Front: "Seiji", Back: "Politik"},
			{Front: "Kokusai", Back: "Internasional"},
			{Front: "Kankei", Back: "Hubungan"},
			{Front: "Rikai", Back: "Pemahaman"},
			{Front: "Kyouryoku", Back: "Kerja sama"},
			{Front: "Sanka", Back: "Partisipasi"},
			{Front: "Hantai", Back: "Berlawanan"},
			{Front: "Sansei", Back: "Setuju"},
			{Front: "Shuukan", Back: "Kebiasaan"},
			{Front: "Dentou", Back: "Tradisi"},
			{Front: "Gijutsu", Back: "Teknologi"},
			{Front: "Hattensuru", Back: "Berkembang"},
			{Front: "Seikou", Back: "Sukses"},
			{Front: "Shippai", Back: "Gagal"},
		}},
		{Name: "Mahir (N1)", Words: []Pair{
			{Front: "Keikou", Back: "Kecenderungan"},
			{Front: "Kouken", Back: "Kontribusi"},
			{Front: "Haaku", Back: "Memahami"},
			{Front: "Issei ni", Back: "Serentak"},
			{Front: "Kibishii", Back: "Ketat/Keras"},
			{Front: "Kougi", Back: "Protes"},
			{Front: "Koushou", Back: "Negosiasi"},
			{Front: "Shinchou", Back: "Hati-hati"},
			{Front: "Tettei", Back: "Tuntas/Menyeluruh"},
			{Front: "Haishi", Back: "Penghapusan"},
			{Front: "Kaigo", Back: "Perawatan lansia"},
			{Front: "Kibou", Back: "Harapan"},
			{Front: "Zetsubou", Back: "Keputusasaan"},
			{Front: "Yuukou", Back: "Valid/Efektif"},
			{Front: "Mukou", Back: "Tidak valid"},
			{Front: "Kouka", Back: "Efek"},
			{Front: "Eikyou", Back: "Pengaruh"},
			{Front: "Sochi", Back: "Tindakan"},
			{Front: "Taisaku", Back: "Penanggulangan"},
			{Front: "Houshin", Back: "Kebijakan"},
			{Front: "Kisei", Back: "Regulasi"},
			{Front: "Kanwa", Back: "Pelonggaran"},
			{Front: "Kakudai", Back: "Perluasan"},
			{Front: "Shukushou", Back: "Pengurangan"},
			{Front: "Iji", Back: "Pemeliharaan"},
			{Front: "Kanri", Back: "Manajemen"},
			{Front: "Unei", Back: "Pengoperasian"},
			{Front: "Soshiki", Back: "Organisasi"},
			{Front: "Kiban", Back: "Landasan"},
			{Front: "Tenbou", Back: "Prospek"},
		}},
	},
	"korean": {
		{Name: "Pemula", Words: []Pair{
			{Front: "Annyeong", Back: "Halo"},
			{Front: "Sarang", Back: "Cinta"},
			{Front: "Hada", Back: "Melakukan"},
			{Front: "Meokda", Back: "Makan"},
			{Front: "Gada", Back: "Pergi"},
			{Front: "Mul (물)", Back: "Air"},
			{Front: "Bap (밥)", Back: "Nasi"},
			{Front: "Chingu", Back: "Teman"},
			{Front: "Hakgyo", Back: "Sekolah"},
			{Front: "Jip", Back: "Rumah"},
			{Front: "Eomma", Back: "Ibu"},
			{Front: "Appa", Back: "Ayah"},
			{Front: "Namja", Back: "Pria"},
			{Front: "Yeoja", Back: "Wanita"},
			{Front: "Oneul", Back: "Hari ini"},
			{Front: "Naeil", Back: "Besok"},
			{Front: "Eoje", Back: "Kemarin"},
			{Front: "Don", Back: "Uang"},
			{Front: "Sigan", Back: "Waktu"},
			{Front: "Ireum", Back: "Nama"},
			{Front: "Gamsa", Back: "Terima kasih"},
			{Front: "Mian", Back: "Maaf"},
			{Front: "Juseyo", Back: "Tolong beri"},
			{Front: "Igeo", Back: "Ini"},
			{Front: "Geugeo", Back: "Itu"},
			{Front: "Eodi", Back: "Dimana"},
			{Front: "Mwo", Back: "Apa"},
			{Front: "Nugu", Back: "Siapa"},
			{Front: "Wae", Back: "Kenapa"},
			{Front: "Eotteoke", Back: "Bagaimana"},
		}},
		{Name: "Menengah", Words: []Pair{
			{Front: "Yaksok", Back: "Janji"},
			{Front: "Haengbok", Back: "Kebahagiaan"},
			{Front: "Munhwa", Back: "Budaya"},
			{Front: "Seonggyeok", Back: "Kepribadian"},
			{Front: "Gyeongheom", Back: "Pengalaman"},
			{Front: "Gihoe", Back: "Kesempatan"},
			{Front: "Mokpyo", Back: "Tujuan"},
			{Front: "Seonggong", Back: "Sukses"},
			{Front: "Silpae", Back: "Gagal"},
			{Front: "Gyeoljeong", Back: "Keputusan"},
			{Front: "Hwangyeong", Back: "Lingkungan"},
			{Front: "Saenghwal", Back: "Kehidupan"},
			{Front: "Sahoe", Back: "Masyarakat"},
			{Front: "Gwangye", Back: "Hubungan"},
			{Front: "Uimun", Back: "Pertanyaan"},
			{Front: "Dap", Back: "Jawaban"},
			{Front: "Iyagi", Back: "Cerita"},
			{Front: "Sasil", Back: "Fakta"},
			{Front: "Iyu", Back: "Alasan"},
			{Front: "Gyeolgwa (결과)", Back: "Hasil"},
			{Front: "Juyohada", Back: "Penting"},
			{Front: "Piryohada", Back: "Perlu"},
			{Front: "Ganunghada", Back: "Mungkin"},
			{Front: "Bulganunghada", Back: "Tidak mungkin"},
			{Front: "Simgakhada", Back: "Serius"},
			{Front: "Wihyeomhada", Back: "Berbahaya"},
			{Front: "Anjeonhada", Back: "Aman"},
			{Front: "Pyeonhada", Back: "Nyaman"},
			{Front: "Bulpyeonhada", Back: "Tidak nyaman"},
			{Front: "Bokjaphada", Back: "Rumit"},
		}},
		{Name: "Mahir", Words: []Pair{
			{Front: "Gyeongje", Back: "Ekonomi"},
			{Front: "Jeongchi", Back: "Politik"},
			{Front: "Baljeon", Back: "Perkembangan"},
			{Front: "Gwanjeom", Back: "Sudut pandang"},
			{Front: "Yeonghyang", Back: "Pengaruh"},
			{Front: "Hyogwa", Back: "Efek"},
			{Front: "Daanchaek", Back: "Alternatif"},
			{Front: "Haegyeol", Back: "Solusi"},
			{Front: "Bipan", Back: "Kritik"},
			{Front: "Noneui", Back: "Diskusi"},
			{Front: "Hyeopryeok", Back: "Kerjasama"},
			{Front: "Gyeongjaeng", Back: "Kompetisi"},
			{Front: "Gaehyeok", Back: "Reformasi"},
			{Front: "Jeongchaek", Back: "Kebijakan"},
			{Front: "Jedoo", Back: "Sistem"},
			{Front: "Gujo (구조)", Back: "Struktur"},
			{Front: "Bunseok", Back: "Analisis"},
			{Front: "Tonggye", Back: "Statistik"},
			{Front: "Josa", Back: "Investigasi"},
			{Front: "Yeongu", Back: "Penelitian"},
			{Front: "Balkyeon", Back: "Penemuan"},
			{Front: "Balmyeong", Back: "Ciptaan"},
			{Front: "Gisul", Back: "Teknologi"},
			{Front: "San-eop", Back: "Industri"},
			{Front: "Sijang", Back: "Pasar"},
			{Front: "Tuja", Back: "Investasi"},
			{Front: "Sobija", Back: "Konsumen"},
			{Front: "Saengsan", Back: "Produksi"},
			{Front: "Subeul", Back: "Ekspor"},
			{Front: "Suip", Back: "Impor"},
		}},
	},
	"german": {
		{Name: "Pemula (A1)", Words: []Pair{
			{Front: "Hallo", Back: "Halo"},
			{Front: "Danke", Back: "Terima kasih"},
			{Front: "Bitte", Back: "Silakan"},
			{Front: "Das Haus", Back: "Rumah"},
			{Front: "Der Hund", Back: "Anjing"},
			{Front: "Die Katze", Back: "Kucing"},
			{Front: "Essen", Back: "Makan"},
			{Front: "Trinken", Back: "Minum"},
			{Front: "Guten Morgen", Back: "Selamat pagi"},
			{Front: "Guten Tag", Back: "Selamat siang"},
			{Front: "Guten Abend", Back: "Selamat malam"},
			{Front: "Tschüss", Back: "Dah"},
			{Front: "Ja", Back: "Ya"},
			{Front: "Nein", Back: "Tidak"},
			{Front: "Der Mann", Back: "Pria"},
			{Front: "Die Frau", Back: "Wanita"},
			{Front: "Das Kind", Back: "Anak"},
			{Front: "Die Schule", Back: "Sekolah"},
			{Front: "Die Arbeit", Back: "Pekerjaan"},
			{Front: "Das Wasser", Back: "Air"},
			{Front: "Das Brot", Back: "Roti"},
			{Front: "Der Apfel", Back: "Apel"},
			{Front: "Die Milch", Back: "Susu"},
			{Front: "Der Kaffee", Back: "Kopi"},
			{Front: "Das Buch", Back: "Buku"},
			{Front: "Der Tisch", Back: "Meja"},
			{Front: "Der Stuhl", Back: "Kursi"},
			{Front: "Das Auto", Back: "Mobil"},
			{Front: "Der Zug", Back: "Kereta"},
			{Front: "Das Flugzeug", Back: "Pesawat"},
		}},
		{Name: "Menengah (B1)", Words: []Pair{
			{Front: "Die Erfahrung", Back: "Pengalaman"},
			{Front: "Die Entscheidung", Back: "Keputusan"},
			{Front: "Vielleicht", Back: "Mungkin"},
			{Front: "Die Zukunft", Back: "Masa depan"},
			{Front: "Die Umwelt", Back: "Lingkungan"},
			{Front: "Die Regierung", Back: "Pemerintah"},
			{Front: "Die Wirtschaft", Back: "Ekonomi"},
			{Front: "Die Gesellschaft", Back: "Masyarakat"},
			{Front: "Die Bildung", Back: "Pendidikan"},
			{Front: "Die Gesundheit", Back: "Kesehatan"},
			{Front: "Entwickeln", Back: "Mengembangkan"},
			{Front: "Verbessern", Back: "Meningkatkan"},
			{Front: "Verstehen", Back: "Mengerti"},
			{Front: "Erklären", Back: "Menjelaskan"},
			{Front: "Besuchen", Back: "Mengunjungi"},
			{Front: "Reisen", Back: "Bepergian"},
			{Front: "Der Urlaub", Back: "Liburan"},
			{Front: "Der Ausflug", Back: "Tamasya"},
			{Front: "Die Gelegenheit", Back: "Kesempatan"},
			{Front: "Der Erfolg", Back: "Sukses"},
			{Front: "Das Ziel", Back: "Tujuan"},
			{Front: "Die Lösung", Back: "Solusi"},
			{Front: "Das Problem", Back: "Masalah"},
			{Front: "Die Meinung", Back: "Pendapat"},
			{Front: "Der Grund", Back: "Alasan"},
			{Front: "Das Ergebnis", Back: "Hasil"},
			{Front: "Wichtig", Back: "Penting"},
			{Front: "Richtig", Back: "Benar"},
			{Front: "Falsch", Back: "Salah"},
			{Front: "Möglich", Back: "Mungkin"},
		}},
		{Name: "Mahir (C1)", Words: []Pair{
			{Front: "Die Verantwortung", Back: "Tanggung jawab"},
			{Front: "Die Gesellschaft", Back: "Masyarakat"},
			{Front: "Unabhängig", Back: "Independen"},
			{Front: "Die Herausforderung", Back: "Tantangan"},
			{Front: "Die Auswirkung", Back: "Dampak"},
			{Front: "Die Maßnahme", Back: "Tindakan"},
			{Front: "Die Verhandlung", Back: "Negosiasi"},
			{Front: "Die Zusammenarbeit", Back: "Kerjasama"},
			{Front: "Die Entwicklung", Back: "Perkembangan"},
			{Front: "Die Forschung", Back: "Penelitian"},
			{Front: "Die Wissenschaft", Back: "Sains"},
			{Front: "Die Technologie", Back: "Teknologi"},
			{Front: "Der Fortschritt", Back: "Kemajuan"},
			{Front: "Die Veränderung", Back: "Perubahan"},
			{Front: "Die Globalisierung", Back: "Globalisasi"},
			{Front: "Der Klimawandel", Back: "Perubahan iklim"},
			{Front: "Die Nachhaltigkeit", Back: "Keberlanjutan"},
			{Front: "Die Innovation", Back: "Inovasi"},
			{Front: "Die Perspektive", Back: "Perspektif"},
			{Front: "Der Kontext", Back: "Konteks"},
			{Front: "Die Analyse", Back: "Analisis"},
			{Front: "Die Strategie", Back: "Strategi"},
			{Front: "Das Konzept", Back: "Konsep"},
			{Front: "Das Prinzip", Back: "Prinsip"},
			{Front: "Die Theorie", Back: "Teori"},
			{Front: "Die Praxis", Back: "Praktek"},
			{Front: "Die Kompetenz", Back: "Kompetensi"},
			{Front: "Die Qualifikation", Back: "Kualifikasi"},
			{Front: "Die Effizienz", Back: "Efisiensi"},
			{Front: "Die Qualität", Back: "Kualitas"},
		}},
	},
	"arabic": {
		{Name: "Pemula", Words: []Pair{
			{Front: "Salam", Back: "Halo"},
			{Front: "Shukran", Back: "Terima kasih"},
			{Front: "Kitaab", Back: "Buku"},
			{Front: "Qalam", Back: "Pena"},
			{Front: "Bayt", Back: "Rumah"},
			{Front: "Madrasah", Back: "Sekolah"},
			{Front: "Umm", Back: "Ibu"},
			{Front: "Ab (أب)", Back: "Ayah"},
			{Front: "Akh (أخ)", Back: "Saudara"},
			{Front: "Ukht (أخت)", Back: "Saudari"},
			{Front: "Maa", Back: "Air"},
			{Front: "Khubz (خبز)", Back: "Roti"},
			{Front: "Akl", Back: "Makan"},
			{Front: "Nawm", Back: "Tidur"},
			{Front: "Shams", Back: "Matahari"},
			{Front: "Qamar", Back: "Bulan"},
			{Front: "Najm", Back: "Bintang"},
			{Front: "Samaa", Back: "Langit"},
			{Front: "Ard (أرض)", Back: "Bumi"},
			{Front: "Yawm", Back: "Hari"},
			{Front: "Layl", Back: "Malam"},
			{Front: "Sabah (صباح)", Back: "Pagi"},
			{Front: "Masaa", Back: "Sore"},
			{Front: "Kabeer", Back: "Besar"},
			{Front: "Sagheer", Back: "Kecil"},
			{Front: "Jameel", Back: "Indah"},
			{Front: "Jadeed", Back: "Baru"},
			{Front: "Qadeem", Back: "Lama"},
			{Front: "Rajul", Back: "Pria"},
			{Front: "Imraa", Back: "Wanita"},
		}},
		{Name: "Menengah", Words: []Pair{
			{Front: "Sadaqa", Back: "Persahabatan"},
			{Front: "Mustaqbal", Back: "Masa depan"},
			{Front: "Hayat", Back: "Kehidupan"},
			{Front: "Amal", Back: "Kerja"},
			{Front: "Ilm", Back: "Ilmu"},
			{Front: "Deen", Back: "Agama"},
			{Front: "Dunya", Back: "Dunia"},
			{Front: "Aakhira (آخرة)", Back: "Akhirat"},
			{Front: "Hukuma", Back: "Pemerintah"},
			{Front: "Shaab (شعب)", Back: "Rakyat"},
			{Front: "Dawla", Back: "Negara"},
			{Front: "Madina", Back: "Kota"},
			{Front: "Qarya", Back: "Desa"},
			{Front: "Tareeq", Back: "Jalan"},
			{Front: "Safar", Back: "Perjalanan"},
			{Front: "Matar", Back: "Bandara"},
			{Front: "Funduq", Back: "Hotel"},
			{Front: "Mataam", Back: "Restoran"},
			{Front: "Mustashfa", Back: "Rumah sakit"},
			{Front: "Tabib", Back: "Dokter"},
			{Front: "Dawaa", Back: "Obat"},
			{Front: "Sehha (صحة)", Back: "Kesehatan"},
			{Front: "Marad", Back: "Penyakit"},
			{Front: "Mushkila", Back: "Masalah"},
			{Front: "Hal", Back: "Solusi"},
			{Front: "Sual", Back: "Pertanyaan"},
			{Front: "Jawab", Back: "Jawaban"},
			{Front: "Fikra", Back: "Ide"},
			{Front: "Raay", Back: "Pendapat"},
			{Front: "Hiwar", Back: "Dialog"},
		}},
		{Name: "Mahir", Words: []Pair{
			{Front: "Iqtisad", Back: "Ekonomi"},
			{Front: "Siyasa", Back: "Politik"},
			{Front: "Thaqafa", Back: "Budaya"},
			{Front: "Tarikh", Back: "Sejarah"},
			{Front: "Jughrafiya", Back: "Geografi"},
			{Front: "Falsafa", Back: "Filsafat"},
			{Front: "Adab (أدب)", Back: "Sastra"},
			{Front: "Fan", Back: "Seni"},
			{Front: "Musiqa", Back: "Musik"},
			{Front: "Riyada", Back: "Olahraga"},
			{Front: "Tiknulujiya", Back: "Teknologi"},
			{Front: "Itisal", Back: "Komunikasi"},
			{Front: "Ilam", Back: "Media"},
			{Front: "Sahafa", Back: "Jurnalistik"},
			{Front: "Qanun", Back: "Hukum"},
			{Front: "Haqq", Back: "Hak"},
			{Front: "Wajib", Back: "Kewajiban"},
			{Front: "Hurriya", Back: "Kebebasan"},
			{Front: "Adl", Back: "Keadilan"},
			{Front: "Salam", Back: "Perdamaian"},
			{Front: "Harb (حرب)", Back: "Perang"},
			{Front: "Amn", Back: "Keamanan"},
			{Front: "Irhab", Back: "Terorisme"},
			{Front: "Bi-a", Back: "Lingkungan"},
			{Front: "Taluwuth", Back: "Polusi"},
			{Front: "Taghayyur", Back: "Perubahan"},
			{Front: "Tatawwur", Back: "Perkembangan"},
			{Front: "Tanmiya", Back: "Pembangunan"},
			{Front: "Taawun", Back: "Kerjasama"},
			{Front: "Tasamuh", Back: "Toleransi"},
		}},
	},
}
