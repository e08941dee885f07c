package xmladiscover

// DefaultKeywords are the MDX words reserved by the provider.
func DefaultKeywords() []string {
	return []string{
		"$AdjustedProbability", "$Distance", "$Probability", "$ProbabilityStDev",
		"$ProbabilityStdDeV", "$ProbabilityVariance", "$StDev", "$StdDeV",
		"$Support", "$Variance", "AddCalculatedMembers", "Action",
		"After", "Aggregate", "All", "Alter", "Ancestor", "And", "Append",
		"As", "ASC", "Axis", "Automatic", "Back_Color", "BASC", "BDESC",
		"Before", "Before_And_After", "Before_And_Self", "Before_Self_After",
		"BottomCount", "BottomPercent", "BottomSum", "Break", "Boolean",
		"Cache", "Calculated", "Call", "Case", "Catalog_Name", "Cell",
		"Cell_Ordinal", "Cells", "Chapters", "Children",
		"Children_Cardinality", "ClosingPeriod", "Cluster",
		"ClusterDistance", "ClusterProbability", "Clusters",
		"CoalesceEmpty", "Column_Values", "Columns", "Content",
		"Contingent", "Continuous", "Correlation", "Cousin", "Covariance",
		"CovarianceN", "Create", "CreatePropertySet", "CrossJoin", "Cube",
		"Cube_Name", "CurrentMember", "CurrentCube", "Custom", "Cyclical",
		"DefaultMember", "Default_Member", "DESC", "Descendents",
		"Description", "Dimension", "Dimension_Unique_Name", "Dimensions",
		"Discrete", "Discretized", "DrillDownLevel",
		"DrillDownLevelBottom", "DrillDownLevelTop", "DrillDownMember",
		"DrillDownMemberBottom", "DrillDownMemberTop", "DrillTrough",
		"DrillUpLevel", "DrillUpMember", "Drop", "Else", "Empty", "End",
		"Equal_Areas", "Exclude_Null", "ExcludeEmpty", "Exclusive",
		"Expression", "Filter", "FirstChild", "FirstRowset",
		"FirstSibling", "Flattened", "Font_Flags", "Font_Name",
		"Font_size", "Fore_Color", "Format_String", "Formatted_Value",
		"Formula", "From", "Generate", "Global", "Head", "Hierarchize",
		"Hierarchy", "Hierary_Unique_name", "IIF", "IsEmpty",
		"Include_Null", "Include_Statistics", "Inclusive", "Input_Only",
		"IsDescendant", "Item", "Lag", "LastChild", "LastPeriods",
		"LastSibling", "Lead", "Level", "Level_Unique_Name", "Levels",
		"LinRegIntercept", "LinRegR2", "LinRegPoint", "LinRegSlope",
		"LinRegVariance", "Long", "MaxRows", "Median", "Member",
		"Member_Caption", "Member_Guid", "Member_Name", "Member_Ordinal",
		"Member_Type", "Member_Unique_Name", "Members",
		"Microsoft_Clustering", "Microsoft_Decision_Trees", "Mining",
		"Model", "Model_Existence_Only", "Models", "Move", "MTD", "Name",
		"Nest", "NextMember", "Non", "NonEmpty", "Normal", "Not",
		"Ntext", "Nvarchar", "OLAP", "On", "OpeningPeriod", "OpenQuery",
		"Or", "Ordered", "Ordinal", "Pages", "ParallelPeriod", "Parent",
		"Parent_Level", "Parent_Unique_Name", "PeriodsToDate", "PMML",
		"Predict", "Predict_Only", "PredictAdjustedProbability",
		"PredictHistogram", "Prediction", "PredictionScore",
		"PredictProbability", "PredictProbabilityStDev",
		"PredictProbabilityVariance", "PredictStDev", "PredictSupport",
		"PredictVariance", "PrevMember", "Probability",
		"Probability_StDev", "Probability_StdDev", "Probability_Variance",
		"Properties", "Property", "QTD", "RangeMax", "RangeMid",
		"RangeMin", "Rank", "Recursive", "Refresh", "Related", "Rename",
		"Rollup", "Rows", "Schema_Name", "Sections", "Select", "Self",
		"Self_And_After", "Sequence_Time", "Server", "Session", "Set",
		"SetToArray", "SetToStr", "Shape", "Skip", "Solve_Order", "Sort",
		"StdDev", "Stdev", "StripCalculatedMembers", "StrToSet",
		"StrToTuple", "SubSet", "Support", "Tail", "Text", "Thresholds",
		"ToggleDrillState", "TopCount", "TopPercent", "TopSum",
		"TupleToStr", "Under", "Uniform", "UniqueName", "Use", "Value",
		"Var", "Variance", "VarP", "VarianceP", "VisualTotals", "When",
		"Where", "With", "WTD", "Xor",
	}
}
