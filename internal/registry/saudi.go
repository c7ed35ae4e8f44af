package registry

// saudiMarket is the built-in Saudi Exchange (Tadawul) universe.
var saudiMarket = []Security{
	{Name: "Saudi Aramco", Symbol: "2222", Sector: "Energy"},
	{Name: "SABIC", Symbol: "2010", Sector: "Materials"},
	{Name: "Al Rajhi Bank", Symbol: "1120", Sector: "Banks"},
	{Name: "Saudi National Bank", Symbol: "1180", Sector: "Banks"},
	{Name: "Riyad Bank", Symbol: "1010", Sector: "Banks"},
	{Name: "Alinma Bank", Symbol: "1150", Sector: "Banks"},
	{Name: "Banque Saudi Fransi", Symbol: "1050", Sector: "Banks"},
	{Name: "Saudi Awwal Bank", Symbol: "1060", Sector: "Banks"},
	{Name: "Arab National Bank", Symbol: "1080", Sector: "Banks"},
	{Name: "Bank Albilad", Symbol: "1140", Sector: "Banks"},
	{Name: "Saudi Investment Bank", Symbol: "1030", Sector: "Banks"},
	{Name: "Bank Aljazira", Symbol: "1020", Sector: "Banks"},
	{Name: "Saudi Telecom Company", Symbol: "7010", Sector: "Telecommunication"},
	{Name: "Etihad Etisalat (Mobily)", Symbol: "7020", Sector: "Telecommunication"},
	{Name: "Zain KSA", Symbol: "7030", Sector: "Telecommunication"},
	{Name: "Maaden", Symbol: "1211", Sector: "Materials"},
	{Name: "SABIC Agri-Nutrients", Symbol: "2020", Sector: "Materials"},
	{Name: "Yansab", Symbol: "2290", Sector: "Materials"},
	{Name: "Sipchem", Symbol: "2310", Sector: "Materials"},
	{Name: "Advanced Petrochemical", Symbol: "2330", Sector: "Materials"},
	{Name: "Saudi Kayan", Symbol: "2350", Sector: "Materials"},
	{Name: "Tasnee", Symbol: "2060", Sector: "Materials"},
	{Name: "Saudi Electricity", Symbol: "5110", Sector: "Utilities"},
	{Name: "ACWA Power", Symbol: "2082", Sector: "Utilities"},
	{Name: "Marafiq", Symbol: "2083", Sector: "Utilities"},
	{Name: "Alkhorayef Water & Power", Symbol: "2081", Sector: "Utilities"},
	{Name: "Almarai", Symbol: "2280", Sector: "Food & Beverages"},
	{Name: "Savola Group", Symbol: "2050", Sector: "Food & Beverages"},
	{Name: "NADEC", Symbol: "6010", Sector: "Food & Beverages"},
	{Name: "Herfy Food Services", Symbol: "6002", Sector: "Consumer Services"},
	{Name: "Saudi Airlines Catering", Symbol: "6004", Sector: "Consumer Services"},
	{Name: "Seera Group", Symbol: "1810", Sector: "Consumer Services"},
	{Name: "Jarir Marketing", Symbol: "4190", Sector: "Retailing"},
	{Name: "United Electronics (eXtra)", Symbol: "4003", Sector: "Retailing"},
	{Name: "BinDawood Holding", Symbol: "4161", Sector: "Retailing"},
	{Name: "Abdullah Al Othaim Markets", Symbol: "4001", Sector: "Retailing"},
	{Name: "Fawaz Alhokair Group", Symbol: "4240", Sector: "Retailing"},
	{Name: "Dr. Sulaiman Al Habib", Symbol: "4013", Sector: "Health Care"},
	{Name: "Mouwasat Medical Services", Symbol: "4002", Sector: "Health Care"},
	{Name: "Dallah Healthcare", Symbol: "4004", Sector: "Health Care"},
	{Name: "Bupa Arabia", Symbol: "8210", Sector: "Insurance"},
	{Name: "Tawuniya", Symbol: "8010", Sector: "Insurance"},
	{Name: "Dar Al Arkan", Symbol: "4300", Sector: "Real Estate"},
	{Name: "Emaar The Economic City", Symbol: "4220", Sector: "Real Estate"},
	{Name: "Jabal Omar Development", Symbol: "4250", Sector: "Real Estate"},
	{Name: "Saudi Cement", Symbol: "3030", Sector: "Cement"},
	{Name: "Yamama Cement", Symbol: "3020", Sector: "Cement"},
	{Name: "Southern Province Cement", Symbol: "3050", Sector: "Cement"},
	{Name: "Aldrees Petroleum", Symbol: "4200", Sector: "Energy"},
	{Name: "Bahri", Symbol: "4030", Sector: "Transportation"},
	{Name: "Budget Saudi", Symbol: "4260", Sector: "Transportation"},
	{Name: "Saudi Research & Media Group", Symbol: "4210", Sector: "Media"},
}
