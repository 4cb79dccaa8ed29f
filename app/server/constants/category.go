package constants

// DefaultRoleID 注册时的默认角色：普通用户
const DefaultRoleID = 20

// GenderIDs 性别取值到编码的映射，服务端校验以这里为准
var GenderIDs = map[string]int{
	"male":   1,
	"female": 2,
	"others": 3,
}

// PositionIDs 职位取值到编码的映射
var PositionIDs = map[string]int{
	"staff":                  10,
	"assistant_manager":      20,
	"manager":                30,
	"senior_manager":         40,
	"deputy_general_manager": 50,
	"general_manager":        60,
}

// DepartmentOptions 上级部门与其下级部门选项，仅用于表单展示，提交值按原样入库
var DepartmentOptions = map[string][]string{
	"개발본부":      {"제1개발부", "제2개발부", "한국지사", "교육그룹", "AI솔루션그룹"},
	"ICT본부":     {"제1그룹", "제2그룹", "제3그룹", "제4그룹"},
	"사회인프라사업부": {"설계·품질그룹", "토호쿠사업소", "후쿠오카사업소", "스마트에너지솔루션부"},
	"경영지원실":     {"인사그룹", "경리그룹", "총무그룹"},
	"영업본부":      {"영업본부"},
	"품질관리부":     {"품질관리부"},
}
