package handler

const (
	msgHelp = "أهلاً 👋 أنا بوت Katiba Events\n\n" +
		"اختار من القايمة تحت 👇\n" +
		LabelNewOrder + "\n" +
		"📋 الأوردرات المسجلة (قائمة + تفاصيل)\n" +
		"📌 الأوردرات المحجوزة (القادمة)\n" +
		LabelMySpecialties + " (تعديل تخصصاتك)\n\n" +
		"/register تسجيل أو إعادة تسجيل\n" +
		"/cancel إلغاء الخطوة الحالية\n\n" +
		"لمعرفة Telegram ID اكتب: id"

	msgTelegramID   = "Telegram ID بتاعك:\n%d"
	msgError        = "حصلت مشكلة. حاول تاني بعد شوية."
	msgCancelled    = "❌ تم الإلغاء."
	msgNothingOpen  = "مفيش حاجة مفتوحة عشان تتلغي."
	msgNoForm       = "⚠️ مفيش فورم مفتوح. ابدأ من القايمة."
	msgStaleButton  = "⚠️ الزرار ده قديم."
	msgNoOrders     = "مفيش أوردرات مسجلة لسه ✅"
	msgNoBooked     = "مفيش أوردرات محجوزة قادمة حالياً ✅"
	msgPickOrder    = "📋 اختر أوردر عشان تشوف التفاصيل:"
	msgPickBooked   = "📌 الأوردرات المحجوزة (القادمة). اضغط على الأوردر للتفاصيل:"
	msgOrderMissing = "الأوردر مش موجود"
	msgOK           = "تم"
)
