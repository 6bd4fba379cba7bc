package namegen

// nouns are the candidate subjects of a name: animals, roles and a few odd ones.
var nouns = []WordEntry{
	{Native: "جوجه", Latin: "jooje"},
	{Native: "پشه", Latin: "pashe"},
	{Native: "سیب\u200cزمینی", Latin: "sibzamini"},
	{Native: "پرنده", Latin: "parande"},
	{Native: "حلزون", Latin: "halazoon"},
	{Native: "خرگوش", Latin: "khargoosh"},
	{Native: "اسب", Latin: "asb"},
	{Native: "طوطی", Latin: "tooti"},
	{Native: "گوزن", Latin: "gavazn"},
	{Native: "آهو", Latin: "ahoo"},
	{Native: "فیل", Latin: "fil"},
	{Native: "مورچه", Latin: "moorche"},
	{Native: "مورچه\u200cخوار", Latin: "moorchekhar"},
	{Native: "موش", Latin: "moosh"},
	{Native: "گربه", Latin: "gorbe"},
	{Native: "سگ", Latin: "sag"},
	{Native: "ماهی", Latin: "mahi"},
	{Native: "مرغ\u200cدریایی", Latin: "morghedaryayi"},
	{Native: "اسب آبی", Latin: "asbeabi"},
	{Native: "فیل آبی", Latin: "fileabi"},
	{Native: "زرافه", Latin: "zarafe"},
	{Native: "اختاپوس", Latin: "okhtapoos"},
	{Native: "دلقک", Latin: "dalghak"},
	{Native: "کرگدن", Latin: "kargadan"},
	{Native: "مهاجر", Latin: "mohajer"},
	{Native: "مترسک", Latin: "matarsak"},
	{Native: "شاپرک", Latin: "shaparak"},
	{Native: "کبوتر", Latin: "kabootar"},
	{Native: "پروانه", Latin: "parvane"},
	{Native: "قورباغه", Latin: "ghoorbaghe"},
	{Native: "شاهین", Latin: "shahin"},
	{Native: "سیمرغ", Latin: "simorgh"},
	{Native: "سنجاب", Latin: "sanjab"},
	{Native: "یوز", Latin: "yooz"},
	{Native: "قرقی", Latin: "gherghi"},
	{Native: "تمساح", Latin: "temsah"},
	{Native: "برنامه\u200cنویس", Latin: "barnamenevis"},
	{Native: "هکر", Latin: "hacker"},
	{Native: "دارکوب", Latin: "darkoob"},
	{Native: "زنبور", Latin: "zanboor"},
	{Native: "ساقی", Latin: "saaghi"},
	{Native: "میمونک", Latin: "meymoonak"},
	{Native: "نهنگ", Latin: "nahang"},
	{Native: "آدمک", Latin: "adamak"},
	{Native: "مسافر", Latin: "mosafer"},
	{Native: "نابغه", Latin: "nabeghe"},
}

// adjectives always follow the linked noun.
var adjectives = []WordEntry{
	{Native: "گریان", Latin: "geryan"},
	{Native: "خندان", Latin: "khandan"},
	{Native: "هشیار", Latin: "hoshyar"},
	{Native: "دیوانه", Latin: "divane"},
	{Native: "پرمشغله", Latin: "pormashghale"},
	{Native: "خوشفکر", Latin: "khoshfekr"},
	{Native: "مبهوت", Latin: "mabhoot"},
	{Native: "دوست\u200cداشتنی", Latin: "doostdashtani"},
	{Native: "خسته", Latin: "khaste"},
	{Native: "کنجکاو", Latin: "konjkav"},
	{Native: "نگران", Latin: "negaran"},
	{Native: "امیدوار", Latin: "omidvar"},
	{Native: "مهربان", Latin: "mehraban"},
	{Native: "تیزپا", Latin: "tizpa"},
	{Native: "هوشمند", Latin: "hooshmand"},
	{Native: "شاعر", Latin: "shaer"},
	{Native: "درون", Latin: "daroon"},
	{Native: "بی\u200cهمتا", Latin: "bihamta"},
	{Native: "بی\u200cنظیر", Latin: "binazir"},
	{Native: "خجالتی", Latin: "khejalati"},
	{Native: "سیری\u200cناپذیر", Latin: "sirinapazir"},
	{Native: "زیبا", Latin: "ziba"},
	{Native: "اندیشمند", Latin: "andishmand"},
	{Native: "صبور", Latin: "saboor"},
	{Native: "سحرآمیز", Latin: "sehramiz"},
	{Native: "بردبار", Latin: "bordbar"},
	{Native: "دلسوز", Latin: "delsooz"},
	{Native: "زودرنج", Latin: "zoodranj"},
	{Native: "خوش\u200cمشرب", Latin: "khoshmashrab"},
	{Native: "گشاده\u200cرو", Latin: "goshaderoo"},
	{Native: "شجاع", Latin: "shoja"},
	{Native: "دست و دلباز", Latin: "dashtodelbaz"},
	{Native: "پرحرف", Latin: "porharf"},
	{Native: "بانمک", Latin: "banamak"},
	{Native: "چرب\u200cزبان", Latin: "charbzaban"},
	{Native: "خوش\u200cشانس", Latin: "khoshshans"},
	{Native: "خوش\u200cاقبال", Latin: "khosheghbal"},
	{Native: "شوخ\u200cطبع", Latin: "shookhtab"},
	{Native: "خوابآلو", Latin: "khabaloo"},
	{Native: "خردمند", Latin: "kheradmand"},
	{Native: "مشکوک", Latin: "mashkook"},
	{Native: "بذله\u200cگو", Latin: "bazlegoo"},
	{Native: "جذاب", Latin: "jazab"},
	{Native: "حواس\u200cپرت", Latin: "havaspart"},
	{Native: "غمگین", Latin: "ghamgin"},
	{Native: "باوفا", Latin: "bavafa"},
	{Native: "وفادار", Latin: "vafadar"},
	{Native: "مؤمن", Latin: "momen"},
	{Native: "فناناپذیر", Latin: "fananapazir"},
	{Native: "قدیمی", Latin: "ghadimi"},
	{Native: "خوشنام", Latin: "khoshnam"},
	{Native: "جسور", Latin: "jasoor"},
	{Native: "خستگی\u200cناپذیر", Latin: "khasteginapazir"},
	{Native: "ریزنقش", Latin: "riznaqsh"},
	{Native: "بلندپرواز", Latin: "bolandparvaz"},
	{Native: "بی\u200cپروا", Latin: "biparva"},
	{Native: "تسلیم\u200cناپذیر", Latin: "taslimnapazir"},
	{Native: "سمج", Latin: "semej"},
	{Native: "بازیگوش", Latin: "bazigoosh"},
}
