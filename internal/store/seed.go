package store

import "github.com/rcliao/style-kb/internal/model"

const unsplash = "https://images.unsplash.com/"

// SampleStyles returns the records written into an empty collection.
func SampleStyles() []model.StyleFields {
	return []model.StyleFields{
		{
			NameCn:         "现代简约",
			NameEn:         "Modern Minimalism",
			CategoryType:   model.General,
			CategoryStyle:  "极简系",
			Definition:     "Less is More，以少胜多，通过减少不必要的元素，展现空间本质。",
			Tags:           []string{"简约", "功能主义", "几何线条", "黑白灰"},
			CoverImage:     unsplash + "photo-1600607687939-ce8a6c25118c?auto=format&fit=crop&w=500&q=60",
			OriginTime:     "20世纪初期",
			OriginRegion:   "德国 (包豪斯)",
			HistoryContext: "工业革命后，反对过度装饰，强调功能和理性。",
			Founders:       "密斯·凡·德·罗 (Mies van der Rohe)",
			Philosophy:     "形式追随功能。",
			Features:       "去除多余装饰，强调空间感，线条利落，大面积留白。",
			DesignTaboos:   "忌过度堆砌，忌色彩杂乱。",
			Colors:         "黑、白、灰、原木色，偶有高饱和度点缀。",
			Materials:      "玻璃、金属、混凝土、原木。",
			Elements:       "几何形体，直线。",
			Lighting:       "无主灯设计，隐藏式灯带，自然光引入。",
			Application:    "住宅，办公，展厅。",
			Derivatives:    "极简主义",
			SimilarDiff:    "与北欧风相比，更冷峻、更强调工业材料。",
			MixMatch:       "工业风，轻奢风。",
			Images: []string{
				unsplash + "photo-1600607687939-ce8a6c25118c?auto=format&fit=crop&w=800&q=80",
				unsplash + "photo-1598928506311-c55ded91a20c?auto=format&fit=crop&w=800&q=80",
			},
			Notes: "适合现代都市生活，易于打理。",
		},
		{
			NameCn:         "北欧风格",
			NameEn:         "Scandinavian Style",
			CategoryType:   model.Interior,
			CategoryStyle:  "自然系",
			Definition:     "注重功能、人性化和自然材料，营造温馨舒适的居住氛围。",
			Tags:           []string{"自然", "温馨", "原木", "Hygge"},
			CoverImage:     unsplash + "photo-1556228453-efd6c1ff04f6?auto=format&fit=crop&w=500&q=60",
			OriginTime:     "20世纪30-50年代",
			OriginRegion:   "北欧五国 (瑞典、丹麦、挪威、芬兰、冰岛)",
			HistoryContext: "高纬度地区冬季漫长，需要明亮温暖的室内环境。",
			Founders:       "阿尔瓦·阿尔托 (Alvar Aalto), 阿恩·雅各布森 (Arne Jacobsen)",
			Philosophy:     "以人为本，大众化的设计。",
			Features:       "明亮的色调，大量运用木材，注重采光，绿植点缀。",
			DesignTaboos:   "忌厚重繁复的窗帘，忌暗沉色调。",
			Colors:         "大面积白色，浅灰色，淡木色，莫兰迪色系点缀。",
			Materials:      "原木 (桦木、松木)，棉麻，羊毛，陶瓷。",
			Elements:       "绿植，几何地毯，装饰画。",
			Lighting:       "暖色温灯光，多层次照明，设计感吊灯。",
			Application:    "住宅，咖啡馆。",
			Derivatives:    "日式北欧 (Japandi)",
			SimilarDiff:    "比日式风格色彩更丰富，比现代简约更温馨。",
			MixMatch:       "日式，现代简约。",
			Images: []string{
				unsplash + "photo-1556228453-efd6c1ff04f6?auto=format&fit=crop&w=800&q=80",
				unsplash + "photo-1524758631624-e2822e304c36?auto=format&fit=crop&w=800&q=80",
			},
			Notes: "IKEA 是北欧风格的典型代表。",
		},
		{
			NameCn:         "工业风格",
			NameEn:         "Industrial Style",
			CategoryType:   model.General,
			CategoryStyle:  "复古系",
			Definition:     "裸露建筑结构和材料，展现粗犷、不加修饰的原始美感。",
			Tags:           []string{"粗犷", "复古", "砖墙", "水泥"},
			CoverImage:     unsplash + "photo-1505691723518-36a5ac385356?auto=format&fit=crop&w=500&q=60",
			OriginTime:     "20世纪90年代",
			OriginRegion:   "美国纽约 (SOHO区)",
			HistoryContext: "艺术家将废弃工厂改造为居住和工作空间 (Loft)。",
			Founders:       "-",
			Philosophy:     "保留建筑的历史痕迹，通过新旧对比产生张力。",
			Features:       "裸露的管线，红砖墙，水泥地面，挑高空间，大开窗。",
			DesignTaboos:   "忌过度精致，忌甜美风格。",
			Colors:         "黑、白、灰、红砖色、铁锈色。",
			Materials:      "金属，砖，混凝土，做旧木材，皮革。",
			Elements:       "齿轮，铁艺家具，复古灯具。",
			Lighting:       "爱迪生灯泡，工矿灯，轨道灯。",
			Application:    "办公室，餐厅，酒吧，Loft住宅。",
			Derivatives:    "蒸汽朋克",
			SimilarDiff:    "比现代简约更粗犷，更有历史感。",
			MixMatch:       "复古美式，现代简约。",
			Images: []string{
				unsplash + "photo-1505691723518-36a5ac385356?auto=format&fit=crop&w=800&q=80",
				unsplash + "photo-1519710164239-da123dc03ef4?auto=format&fit=crop&w=800&q=80",
			},
			Notes: "适合个性化强烈的空间。",
		},
		{
			NameCn:         "新中式",
			NameEn:         "New Chinese Style",
			CategoryType:   model.Interior,
			CategoryStyle:  "复古系",
			Definition:     "将中国传统元素与现代设计手法结合，体现东方美学精神。",
			Tags:           []string{"东方", "禅意", "雅致", "对称"},
			CoverImage:     unsplash + "photo-1532323544230-7191fd51bc1b?auto=format&fit=crop&w=500&q=60",
			OriginTime:     "20世纪末21世纪初",
			OriginRegion:   "中国",
			HistoryContext: "随着国力增强，对传统文化的自信回归，寻求符合现代生活的中式表达。",
			Founders:       "贝聿铭 (建筑领域影响)",
			Philosophy:     "天人合一，移步换景，留白意境。",
			Features:       "对称布局，格栅屏风，圈椅，泼墨山水，简化传统线条。",
			DesignTaboos:   "忌堆砌传统符号，忌红木家具过度沉重。",
			Colors:         "黑、白、灰、原木色，中国红/靛蓝点缀。",
			Materials:      "木材 (胡桃木、榆木)，石材，丝绸，棉麻。",
			Elements:       "回纹，窗棂，盆景，水墨画。",
			Lighting:       "暖光，灯笼造型改良灯具，隐藏式照明。",
			Application:    "住宅，茶室，酒店，会所。",
			Derivatives:    "禅意中式",
			SimilarDiff:    "比传统中式更轻盈、更符合人体工学。",
			MixMatch:       "现代简约。",
			Images: []string{
				unsplash + "photo-1532323544230-7191fd51bc1b?auto=format&fit=crop&w=800&q=80",
				unsplash + "photo-1599690940375-843187c2c3bc?auto=format&fit=crop&w=800&q=80",
			},
			Notes: "关键在于意境的营造，而非形式的模仿。",
		},
		{
			NameCn:         "包豪斯",
			NameEn:         "Bauhaus",
			CategoryType:   model.Architecture,
			CategoryStyle:  "极简系",
			Definition:     "艺术与技术的统一，设计的目的是人而不是产品。",
			Tags:           []string{"理性", "几何", "工业化", "经典"},
			CoverImage:     unsplash + "photo-1585320806297-9794b3e4eeae?auto=format&fit=crop&w=500&q=60",
			OriginTime:     "1919-1933",
			OriginRegion:   "德国 (魏玛/德绍)",
			HistoryContext: "一战后重建，试图解决工业化生产与艺术设计的矛盾。",
			Founders:       "沃尔特·格罗皮乌斯 (Walter Gropius)",
			Philosophy:     "功能决定形式，忠实于材料。",
			Features:       "平屋顶，玻璃幕墙，非对称布局，钢管家具。",
			DesignTaboos:   "忌无意义的装饰。",
			Colors:         "红、黄、蓝三原色，黑、白、灰。",
			Materials:      "钢筋混凝土，玻璃，钢管，皮革。",
			Elements:       "基本的几何形状 (圆、方、三角)。",
			Lighting:       "功能性照明，工业灯具。",
			Application:    "建筑，家具设计，平面设计。",
			Derivatives:    "国际主义风格",
			SimilarDiff:    "现代主义的源头。",
			MixMatch:       "现代简约。",
			Images: []string{
				unsplash + "photo-1585320806297-9794b3e4eeae?auto=format&fit=crop&w=800&q=80",
				unsplash + "photo-1512352825655-5853dc202865?auto=format&fit=crop&w=800&q=80",
			},
			Notes: "对现代设计影响深远。",
		},
	}
}
