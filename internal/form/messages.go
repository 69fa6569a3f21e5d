package form

import "katiba/internal/domain"

const (
	promptServices      = "🧩 اختار التخصصات المطلوبة للأوردر ده، وبعدين اضغط ✅ تأكيد:"
	promptClient        = "🧑‍💼 اكتب اسم صاحب الفرح (الزبون):"
	promptDate          = "📅 اكتب تاريخ المناسبة بأي صيغة من دول:\n15.12.2026\n15/12/2026\n15-12-2026\n15/1/2026\n15/01/2026"
	promptLocation      = "📍 اكتب مكان المناسبة (مدينة + اسم القاعة/المكان):"
	promptDetails       = "📝 اكتب تفاصيل الأوردر (نوع المناسبة + أي ملاحظات):"
	promptDeposit       = "💰 اكتب قيمة العربون (جنيه مصري فقط):"
	promptName          = "✍️ اكتب اسمك زي ما تحب الفريق يشوفه:"
	promptMySpecialties = "🛠 اختار تخصصاتك، وبعدين اضغط ✅ تأكيد:"

	msgBadDate        = "❌ تاريخ غير صحيح. مثال: 15/12/2026"
	msgBadDeposit     = "❌ اكتب العربون كرقم صحيح (مثال: 500)"
	msgEmptyText      = "❌ الرسالة فاضية."
	msgEmptySelection = "⚠️ لازم تختار تخصص واحد على الأقل"
	msgUseButtons     = "👆 استخدم الأزرار اللي تحت عشان تختار التخصصات."
	msgStaleButton    = "⚠️ الزرار ده مش مستخدم دلوقتي."

	msgOrderSaveFailed  = "⚠️ حصلت مشكلة في حفظ الأوردر. ابدأ الأوردر من الأول تاني."
	msgMemberSaveFailed = "⚠️ حصلت مشكلة في حفظ بياناتك. حاول تاني."
	msgLoadFailed       = "حصلت مشكلة. حاول تاني بعد شوية."

	msgRegistered       = "✅ تم تسجيلك يا %s\n🧩 تخصصاتك: %s"
	msgSpecialtiesSaved = "✅ تم تحديث تخصصاتك\n🧩 تخصصاتك: %s"
)

// prompt returns the question asked at step s
func prompt(s domain.Step) string {
	switch s {
	case domain.StepServices:
		return promptServices
	case domain.StepClient:
		return promptClient
	case domain.StepDate:
		return promptDate
	case domain.StepLocation:
		return promptLocation
	case domain.StepDetails:
		return promptDetails
	case domain.StepDeposit:
		return promptDeposit
	case domain.StepName:
		return promptName
	case domain.StepSpecialties:
		return promptMySpecialties
	}
	return ""
}
