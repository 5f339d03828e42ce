package knowledge

import "github.com/PJRenu/LegaLuna/pkg/language"

// Samples returns the built-in passages used when no documents directory
// is available.
func Samples() []Document {
	docs := []Document{
		{
			Content:  "Under the Indian Rent Control Act, tenants have protection against arbitrary eviction without proper notice. Landlords must provide at least 3 months' notice before asking a tenant to vacate the premises.",
			Source:   "rental_laws.txt",
			Language: language.English,
		},
		{
			Content:  "To file an FIR (First Information Report), visit the nearest police station with jurisdiction over the crime area. The police are obligated to register your complaint under Section 154 of the Criminal Procedure Code.",
			Source:   "criminal_procedure.txt",
			Language: language.English,
		},
		{
			Content:  "Under the Protection of Women from Domestic Violence Act, 2005, women can seek protection orders, residence orders, and monetary relief. The law covers physical, sexual, verbal, emotional, and economic abuse.",
			Source:   "domestic_violence.txt",
			Language: language.English,
		},
		{
			Content:  "भारतीय किराया नियंत्रण अधिनियम के तहत, किरायेदारों को उचित नोटिस के बिना मनमाने ढंग से बेदखली के खिलाफ संरक्षण प्राप्त है। मकान मालिकों को किरायेदार को परिसर खाली करने के लिए कहने से पहले कम से कम 3 महीने का नोटिस देना होगा।",
			Source:   "rental_laws_hindi.txt",
			Language: language.Hindi,
		},
		{
			Content:  "एफआईआर (प्रथम सूचना रिपोर्ट) दर्ज करने के लिए, अपराध क्षेत्र के अधिकार क्षेत्र वाले निकटतम पुलिस स्टेशन पर जाएं। पुलिस आपराधिक प्रक्रिया संहिता की धारा 154 के तहत आपकी शिकायत दर्ज करने के लिए बाध्य है।",
			Source:   "criminal_procedure_hindi.txt",
			Language: language.Hindi,
		},
		{
			Content:  "घरेलू हिंसा से महिलाओं का संरक्षण अधिनियम, 2005 के तहत, महिलाएं संरक्षण आदेश, निवास आदेश और मौद्रिक राहत मांग सकती हैं। कानून शारीरिक, यौन, मौखिक, भावनात्मक और आर्थिक दुर्व्यवहार को कवर करता है।",
			Source:   "domestic_violence_hindi.txt",
			Language: language.Hindi,
		},
	}
	for i := range docs {
		docs[i] = docs[i].withDefaults()
	}
	return docs
}
